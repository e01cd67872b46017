package booking

import (
	"errors"
	"sort"
	"time"

	"coolq/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeCustomerRepo struct {
	customers map[string]*models.Customer
}

func newFakeCustomerRepo(customers ...*models.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[string]*models.Customer)}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) GetByID(id string) (*models.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetAll() ([]models.Customer, error) { return nil, nil }

func (r *fakeCustomerRepo) Create(c *models.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) UpdateWithDocument(id string, _ bson.M) error {
	if _, ok := r.customers[id]; !ok {
		return errors.New("customer not found")
	}
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	delete(r.customers, id)
	return nil
}

type fakeTechnicianRepo struct {
	technicians map[string]*models.Technician
}

func newFakeTechnicianRepo(technicians ...*models.Technician) *fakeTechnicianRepo {
	r := &fakeTechnicianRepo{technicians: make(map[string]*models.Technician)}
	for _, t := range technicians {
		r.technicians[t.ID] = t
	}
	return r
}

func (r *fakeTechnicianRepo) GetByID(id string) (*models.Technician, error) {
	t, ok := r.technicians[id]
	if !ok {
		return nil, nil
	}
	tp := *t
	return &tp, nil
}

func (r *fakeTechnicianRepo) GetByEmail(string) (*models.Technician, error) { return nil, nil }

func (r *fakeTechnicianRepo) GetAll(string) ([]models.Technician, error) { return nil, nil }

func (r *fakeTechnicianRepo) FirstApprovedInDistrict(district string) (*models.Technician, error) {
	ids := make([]string, 0, len(r.technicians))
	for id := range r.technicians {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		t := r.technicians[id]
		if !t.Approved() {
			continue
		}
		for _, d := range t.Districts {
			if d == district {
				tp := *t
				return &tp, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeTechnicianRepo) Create(t *models.Technician) error {
	r.technicians[t.ID] = t
	return nil
}

func (r *fakeTechnicianRepo) UpdateWithDocument(id string, _ bson.M) error {
	if _, ok := r.technicians[id]; !ok {
		return errors.New("technician not found")
	}
	return nil
}

func (r *fakeTechnicianRepo) UpdateRatingIf(id string, oldTotal int, newRating float64, newTotal int) (bool, error) {
	t, ok := r.technicians[id]
	if !ok || t.TotalReviews != oldTotal {
		return false, nil
	}
	t.Rating = newRating
	t.TotalReviews = newTotal
	return true, nil
}

func (r *fakeTechnicianRepo) Delete(id string) error {
	delete(r.technicians, id)
	return nil
}

type fakeCatalogRepo struct {
	services map[string]*models.Service
}

func newFakeCatalogRepo(services ...*models.Service) *fakeCatalogRepo {
	r := &fakeCatalogRepo{services: make(map[string]*models.Service)}
	for _, s := range services {
		r.services[s.ID] = s
	}
	return r
}

func (r *fakeCatalogRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	sp := *s
	return &sp, nil
}

func (r *fakeCatalogRepo) GetAll() ([]models.Service, error)    { return nil, nil }
func (r *fakeCatalogRepo) GetActive() ([]models.Service, error) { return nil, nil }

func (r *fakeCatalogRepo) Create(s *models.Service) error {
	r.services[s.ID] = s
	return nil
}

func (r *fakeCatalogRepo) UpdateWithDocument(id string, _ bson.M) error {
	if _, ok := r.services[id]; !ok {
		return errors.New("service not found")
	}
	return nil
}

func (r *fakeCatalogRepo) Delete(id string) error {
	delete(r.services, id)
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	bp := *b
	return &bp, nil
}

func (r *fakeBookingRepo) GetByCustomer(customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByTechnician(technicianID, status string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.TechnicianID == technicianID && (status == "" || b.Status == status) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	bp := *b
	r.bookings[b.ID] = &bp
	return nil
}

func (r *fakeBookingRepo) TransitionStatus(id, technicianID, from, to string, extra bson.M) (bool, error) {
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return false, nil
	}
	if technicianID != "" && b.TechnicianID != technicianID {
		return false, nil
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	applyFields(b, extra)
	return true, nil
}

func (r *fakeBookingRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	applyFields(b, updateDoc)
	return nil
}

func (r *fakeBookingRepo) AppendJobPhotos(id string, urls []string) (bool, error) {
	b, ok := r.bookings[id]
	if !ok || b.Status == models.BookingCompleted || b.Status == models.BookingCancelled {
		return false, nil
	}
	b.JobPhotos = append(b.JobPhotos, urls...)
	return true, nil
}

// applyFields mirrors the $set document handling of the Mongo implementation
// for the fields the services actually write.
func applyFields(b *models.Booking, fields bson.M) {
	for k, v := range fields {
		switch k {
		case "status":
			b.Status = v.(string)
		case "technician_notes":
			b.TechnicianNotes = v.(string)
		case "completed_at":
			t := v.(time.Time)
			b.CompletedAt = &t
		case "final_price":
			p := v.(float64)
			b.FinalPrice = &p
		case "has_review":
			b.HasReview = v.(bool)
		case "payment_status":
			b.PaymentStatus = v.(string)
		case "updated_at":
			b.UpdatedAt = v.(time.Time)
		}
	}
}

func newTestService(bookingRepo *fakeBookingRepo, customerRepo *fakeCustomerRepo, technicianRepo *fakeTechnicianRepo, catalogRepo *fakeCatalogRepo) *DefaultBookingService {
	return &DefaultBookingService{
		BookingRepo:    bookingRepo,
		CustomerRepo:   customerRepo,
		TechnicianRepo: technicianRepo,
		CatalogRepo:    catalogRepo,
	}
}
