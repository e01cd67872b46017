package technician

import (
	"errors"
	"testing"

	"coolq/models"
	"coolq/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeTechnicianRepo struct {
	technicians map[string]*models.Technician
}

func newFakeRepo(technicians ...*models.Technician) *fakeTechnicianRepo {
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

func (r *fakeTechnicianRepo) GetAll(status string) ([]models.Technician, error) {
	var out []models.Technician
	for _, t := range r.technicians {
		if status == "" || t.Status == status {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTechnicianRepo) FirstApprovedInDistrict(string) (*models.Technician, error) {
	return nil, nil
}

func (r *fakeTechnicianRepo) Create(t *models.Technician) error {
	r.technicians[t.ID] = t
	return nil
}

func (r *fakeTechnicianRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	t, ok := r.technicians[id]
	if !ok {
		return errors.New("technician not found")
	}
	for k, v := range updateDoc {
		switch k {
		case "status":
			t.Status = v.(string)
		case "rejection_reason":
			t.RejectionReason = v.(string)
		case "name":
			t.Name = v.(string)
		case "phone_number":
			t.PhoneNumber = v.(string)
		case "districts":
			t.Districts = v.([]string)
		case "service_types":
			t.ServiceTypes = v.([]string)
		}
	}
	return nil
}

func (r *fakeTechnicianRepo) UpdateRatingIf(string, int, float64, int) (bool, error) {
	return false, nil
}

func (r *fakeTechnicianRepo) Delete(id string) error {
	delete(r.technicians, id)
	return nil
}

func pendingTechnician(id string, districts ...string) *models.Technician {
	return &models.Technician{
		ID:        id,
		Name:      "ช่างเอก",
		Status:    models.TechnicianPending,
		Districts: districts,
	}
}

func TestApproveTechnician(t *testing.T) {
	repo := newFakeRepo(pendingTechnician("tech-1", "บางนา"))
	svc := &DefaultTechnicianService{Repo: repo}

	approved, err := svc.ApproveTechnician("tech-1")
	if err != nil {
		t.Fatalf("ApproveTechnician returned error: %v", err)
	}
	if approved.Status != models.TechnicianApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}
}

func TestApproveTechnicianWithoutDistricts(t *testing.T) {
	repo := newFakeRepo(pendingTechnician("tech-1"))
	svc := &DefaultTechnicianService{Repo: repo}

	_, err := svc.ApproveTechnician("tech-1")
	var verr *utils.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError without coverage districts, got %v", err)
	}
	stored, _ := repo.GetByID("tech-1")
	if stored.Status != models.TechnicianPending {
		t.Fatalf("technician must stay pending, got %s", stored.Status)
	}
}

func TestApproveClearsRejectionReason(t *testing.T) {
	rejected := pendingTechnician("tech-1", "บางนา")
	rejected.Status = models.TechnicianRejected
	rejected.RejectionReason = "เอกสารไม่ครบ"
	repo := newFakeRepo(rejected)
	svc := &DefaultTechnicianService{Repo: repo}

	approved, err := svc.ApproveTechnician("tech-1")
	if err != nil {
		t.Fatalf("ApproveTechnician returned error: %v", err)
	}
	if approved.RejectionReason != "" {
		t.Fatalf("approval should clear the rejection reason, got %q", approved.RejectionReason)
	}
}

func TestRejectTechnician(t *testing.T) {
	repo := newFakeRepo(pendingTechnician("tech-1", "บางนา"))
	svc := &DefaultTechnicianService{Repo: repo}

	rejected, err := svc.RejectTechnician("tech-1", "เอกสารไม่ครบ")
	if err != nil {
		t.Fatalf("RejectTechnician returned error: %v", err)
	}
	if rejected.Status != models.TechnicianRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}
	if rejected.RejectionReason != "เอกสารไม่ครบ" {
		t.Fatalf("rejection reason not recorded, got %q", rejected.RejectionReason)
	}
}

func TestRejectTechnicianRequiresReason(t *testing.T) {
	svc := &DefaultTechnicianService{Repo: newFakeRepo(pendingTechnician("tech-1", "บางนา"))}

	_, err := svc.RejectTechnician("tech-1", "")
	var verr *utils.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError without a reason, got %v", err)
	}
}

func TestGetAllTechniciansValidatesStatus(t *testing.T) {
	svc := &DefaultTechnicianService{Repo: newFakeRepo()}

	_, err := svc.GetAllTechnicians("banned")
	var verr *utils.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for unknown status filter, got %v", err)
	}
}

func TestUpdateTechnicianPartialFields(t *testing.T) {
	repo := newFakeRepo(pendingTechnician("tech-1", "บางนา"))
	svc := &DefaultTechnicianService{Repo: repo}

	updated, err := svc.UpdateTechnician(models.Technician{
		ID:        "tech-1",
		Districts: []string{"บางนา", "พระโขนง"},
	})
	if err != nil {
		t.Fatalf("UpdateTechnician returned error: %v", err)
	}
	if len(updated.Districts) != 2 {
		t.Fatalf("districts not updated: %v", updated.Districts)
	}
	if updated.Name != "ช่างเอก" {
		t.Fatalf("untouched fields must survive a partial update, got %q", updated.Name)
	}
}

func TestUpdateTechnicianNoFields(t *testing.T) {
	svc := &DefaultTechnicianService{Repo: newFakeRepo(pendingTechnician("tech-1", "บางนา"))}

	_, err := svc.UpdateTechnician(models.Technician{ID: "tech-1"})
	var verr *utils.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError with no updatable fields, got %v", err)
	}
}
