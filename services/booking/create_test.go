package booking

import (
	"errors"
	"testing"
	"time"

	"coolq/models"
	"coolq/utils"
)

func washService() *models.Service {
	return &models.Service{
		ID:   "svc-wash",
		Name: "ล้างแอร์",
		Options: []models.PriceOption{
			{CapacityLabel: "9000-12000", Price: 400, PricingUnit: models.PricingPerItem},
			{CapacityLabel: "18000-24000", Price: 600, PricingUnit: models.PricingPerItem},
		},
		Active: true,
	}
}

func installService() *models.Service {
	return &models.Service{
		ID:   "svc-install",
		Name: "ติดตั้งแอร์",
		Options: []models.PriceOption{
			{Price: 2500, PricingUnit: models.PricingLumpSum},
		},
		Active: true,
	}
}

func bangnaCustomer() *models.Customer {
	return &models.Customer{ID: "cust-1", Name: "สมชาย", District: "บางนา"}
}

func bangnaTechnician(id string) *models.Technician {
	return &models.Technician{
		ID:        id,
		Name:      "ช่างเอก",
		Status:    models.TechnicianApproved,
		Districts: []string{"บางนา", "พระโขนง"},
	}
}

func validRequest(selections ...ServiceSelection) CreateBookingRequest {
	return CreateBookingRequest{
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Address:     "99/1 ถนนสุขุมวิท",
		Selections:  selections,
	}
}

func TestCreateBookingPerItemPricing(t *testing.T) {
	bookings := newFakeBookingRepo()
	svc := newTestService(
		bookings,
		newFakeCustomerRepo(bangnaCustomer()),
		newFakeTechnicianRepo(bangnaTechnician("tech-1")),
		newFakeCatalogRepo(washService()),
	)

	conf, err := svc.CreateBooking("cust-1", validRequest(ServiceSelection{
		ServiceID:     "svc-wash",
		CapacityLabel: "9000-12000",
		Quantity:      2,
	}))
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if conf.TotalPrice != 800 {
		t.Fatalf("expected total 800 for 2 per-item units at 400, got %v", conf.TotalPrice)
	}
	if conf.Technician.ID != "tech-1" {
		t.Fatalf("expected technician tech-1, got %s", conf.Technician.ID)
	}

	b, _ := bookings.GetByID(conf.BookingID)
	if b == nil {
		t.Fatal("booking was not persisted")
	}
	if b.Status != models.BookingPending {
		t.Fatalf("new booking should be pending, got %s", b.Status)
	}
	if b.PaymentStatus != models.PaymentPending {
		t.Fatalf("new booking should be pending_payment, got %s", b.PaymentStatus)
	}
	if b.District != "บางนา" {
		t.Fatalf("booking district should come from the customer, got %s", b.District)
	}
	if len(b.Items) != 1 || b.Items[0].ComputedPrice != 800 || b.Items[0].Quantity != 2 {
		t.Fatalf("unexpected line items: %+v", b.Items)
	}
}

func TestCreateBookingLumpSumIgnoresQuantity(t *testing.T) {
	svc := newTestService(
		newFakeBookingRepo(),
		newFakeCustomerRepo(bangnaCustomer()),
		newFakeTechnicianRepo(bangnaTechnician("tech-1")),
		newFakeCatalogRepo(installService()),
	)

	conf, err := svc.CreateBooking("cust-1", validRequest(ServiceSelection{
		ServiceID: "svc-install",
		Quantity:  3,
	}))
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if conf.TotalPrice != 2500 {
		t.Fatalf("lump-sum price should not multiply by quantity, got %v", conf.TotalPrice)
	}
}

func TestCreateBookingSumsMultipleSelections(t *testing.T) {
	svc := newTestService(
		newFakeBookingRepo(),
		newFakeCustomerRepo(bangnaCustomer()),
		newFakeTechnicianRepo(bangnaTechnician("tech-1")),
		newFakeCatalogRepo(washService(), installService()),
	)

	conf, err := svc.CreateBooking("cust-1", validRequest(
		ServiceSelection{ServiceID: "svc-wash", CapacityLabel: "18000-24000", Quantity: 2},
		ServiceSelection{ServiceID: "svc-install"},
	))
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if conf.TotalPrice != 2*600+2500 {
		t.Fatalf("expected total 3700, got %v", conf.TotalPrice)
	}
}

func TestCreateBookingCapacityFallback(t *testing.T) {
	svc := newTestService(
		newFakeBookingRepo(),
		newFakeCustomerRepo(bangnaCustomer()),
		newFakeTechnicianRepo(bangnaTechnician("tech-1")),
		newFakeCatalogRepo(washService()),
	)

	conf, err := svc.CreateBooking("cust-1", validRequest(ServiceSelection{
		ServiceID:     "svc-wash",
		CapacityLabel: "36000-48000",
	}))
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	// Unknown capacity label falls back to the first listed option.
	if conf.TotalPrice != 400 {
		t.Fatalf("expected fallback to first option at 400, got %v", conf.TotalPrice)
	}
}

func TestCreateBookingDefaultsQuantityToOne(t *testing.T) {
	bookings := newFakeBookingRepo()
	svc := newTestService(
		bookings,
		newFakeCustomerRepo(bangnaCustomer()),
		newFakeTechnicianRepo(bangnaTechnician("tech-1")),
		newFakeCatalogRepo(washService()),
	)

	conf, err := svc.CreateBooking("cust-1", validRequest(ServiceSelection{
		ServiceID:     "svc-wash",
		CapacityLabel: "9000-12000",
	}))
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	b, _ := bookings.GetByID(conf.BookingID)
	if b.Items[0].Quantity != 1 {
		t.Fatalf("omitted quantity should default to 1, got %d", b.Items[0].Quantity)
	}
	if conf.TotalPrice != 400 {
		t.Fatalf("expected total 400, got %v", conf.TotalPrice)
	}
}

func TestCreateBookingPicksLowestIDTechnician(t *testing.T) {
	svc := newTestService(
		newFakeBookingRepo(),
		newFakeCustomerRepo(bangnaCustomer()),
		newFakeTechnicianRepo(bangnaTechnician("tech-b"), bangnaTechnician("tech-a")),
		newFakeCatalogRepo(washService()),
	)

	conf, err := svc.CreateBooking("cust-1", validRequest(ServiceSelection{ServiceID: "svc-wash"}))
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if conf.Technician.ID != "tech-a" {
		t.Fatalf("matching should pick the lowest technician id, got %s", conf.Technician.ID)
	}
}

func TestCreateBookingSkipsUnapprovedTechnicians(t *testing.T) {
	pending := bangnaTechnician("tech-a")
	pending.Status = models.TechnicianPending
	svc := newTestService(
		newFakeBookingRepo(),
		newFakeCustomerRepo(bangnaCustomer()),
		newFakeTechnicianRepo(pending, bangnaTechnician("tech-b")),
		newFakeCatalogRepo(washService()),
	)

	conf, err := svc.CreateBooking("cust-1", validRequest(ServiceSelection{ServiceID: "svc-wash"}))
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if conf.Technician.ID != "tech-b" {
		t.Fatalf("pending technicians must not be matched, got %s", conf.Technician.ID)
	}
}

func TestCreateBookingRequiresCustomerDistrict(t *testing.T) {
	noDistrict := bangnaCustomer()
	noDistrict.District = ""
	bookings := newFakeBookingRepo()
	svc := newTestService(
		bookings,
		newFakeCustomerRepo(noDistrict),
		newFakeTechnicianRepo(bangnaTechnician("tech-1")),
		newFakeCatalogRepo(washService()),
	)

	_, err := svc.CreateBooking("cust-1", validRequest(ServiceSelection{ServiceID: "svc-wash"}))
	var verr *utils.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for missing district, got %v", err)
	}
	if all, _ := bookings.GetAll(); len(all) != 0 {
		t.Fatal("no booking should be persisted when validation fails")
	}
}

func TestCreateBookingNoTechnicianInDistrict(t *testing.T) {
	elsewhere := bangnaTechnician("tech-1")
	elsewhere.Districts = []string{"ลาดพร้าว"}
	svc := newTestService(
		newFakeBookingRepo(),
		newFakeCustomerRepo(bangnaCustomer()),
		newFakeTechnicianRepo(elsewhere),
		newFakeCatalogRepo(washService()),
	)

	_, err := svc.CreateBooking("cust-1", validRequest(ServiceSelection{ServiceID: "svc-wash"}))
	var nferr *utils.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError when no technician covers the district, got %v", err)
	}
}

func TestCreateBookingUnknownService(t *testing.T) {
	svc := newTestService(
		newFakeBookingRepo(),
		newFakeCustomerRepo(bangnaCustomer()),
		newFakeTechnicianRepo(bangnaTechnician("tech-1")),
		newFakeCatalogRepo(),
	)

	_, err := svc.CreateBooking("cust-1", validRequest(ServiceSelection{ServiceID: "svc-missing"}))
	var nferr *utils.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError for unknown service, got %v", err)
	}
}

func TestCreateBookingInactiveService(t *testing.T) {
	retired := washService()
	retired.Active = false
	svc := newTestService(
		newFakeBookingRepo(),
		newFakeCustomerRepo(bangnaCustomer()),
		newFakeTechnicianRepo(bangnaTechnician("tech-1")),
		newFakeCatalogRepo(retired),
	)

	_, err := svc.CreateBooking("cust-1", validRequest(ServiceSelection{ServiceID: "svc-wash"}))
	var verr *utils.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for inactive service, got %v", err)
	}
}

func TestCreateBookingUnknownCustomer(t *testing.T) {
	svc := newTestService(
		newFakeBookingRepo(),
		newFakeCustomerRepo(),
		newFakeTechnicianRepo(bangnaTechnician("tech-1")),
		newFakeCatalogRepo(washService()),
	)

	_, err := svc.CreateBooking("cust-ghost", validRequest(ServiceSelection{ServiceID: "svc-wash"}))
	var nferr *utils.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError for unknown customer, got %v", err)
	}
}
