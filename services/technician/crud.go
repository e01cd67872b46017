package technician

import (
	"fmt"
	"time"

	"coolq/models"
	"coolq/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetTechnicianByID fetches one technician, with credentials stripped.
func (s *DefaultTechnicianService) GetTechnicianByID(id string) (*models.Technician, error) {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch technician: %w", err)
	}
	if t == nil {
		return nil, utils.NotFoundf("technician not found")
	}
	t.PasswordHash = ""
	t.TokenHash = ""
	return t, nil
}

// UpdateTechnician updates non-empty profile fields using a partial update.
func (s *DefaultTechnicianService) UpdateTechnician(t models.Technician) (*models.Technician, error) {
	logger := utils.GetLogger()

	if t.ID == "" {
		return nil, utils.Validationf("technician ID is required for update")
	}

	updateFields := bson.M{
		"updated_at": time.Now(),
	}
	if t.Name != "" {
		updateFields["name"] = t.Name
	}
	if t.PhoneNumber != "" {
		updateFields["phone_number"] = t.PhoneNumber
	}
	if t.Districts != nil {
		updateFields["districts"] = t.Districts
	}
	if t.ServiceTypes != nil {
		updateFields["service_types"] = t.ServiceTypes
	}
	if t.IDCardURL != "" {
		updateFields["id_card_url"] = t.IDCardURL
	}
	if t.VerifyPhotoURL != "" {
		updateFields["verify_photo_url"] = t.VerifyPhotoURL
	}
	if len(updateFields) == 1 {
		return nil, utils.Validationf("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(t.ID, updateFields); err != nil {
		logger.Error("failed to update technician", zap.String("technicianID", t.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update technician: %w", err)
	}
	return s.GetTechnicianByID(t.ID)
}

// GetAllTechnicians lists technicians, optionally filtered by approval status.
func (s *DefaultTechnicianService) GetAllTechnicians(status string) ([]models.Technician, error) {
	if status != "" &&
		status != models.TechnicianPending &&
		status != models.TechnicianApproved &&
		status != models.TechnicianRejected {
		return nil, utils.Validationf("unknown technician status %q", status)
	}
	technicians, err := s.Repo.GetAll(status)
	if err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}
	for i := range technicians {
		technicians[i].PasswordHash = ""
		technicians[i].TokenHash = ""
	}
	return technicians, nil
}

// ApproveTechnician marks a technician approved, making them assignable for
// bookings. Approval requires a non-empty coverage district list.
func (s *DefaultTechnicianService) ApproveTechnician(id string) (*models.Technician, error) {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch technician: %w", err)
	}
	if t == nil {
		return nil, utils.NotFoundf("technician not found")
	}
	if len(t.Districts) == 0 {
		return nil, utils.Validationf("technician has no coverage districts and cannot be approved")
	}

	update := bson.M{
		"status":           models.TechnicianApproved,
		"rejection_reason": "",
		"updated_at":       time.Now(),
	}
	if err := s.Repo.UpdateWithDocument(id, update); err != nil {
		return nil, fmt.Errorf("failed to approve technician: %w", err)
	}
	utils.GetLogger().Info("technician approved", zap.String("technicianID", id))
	return s.GetTechnicianByID(id)
}

// RejectTechnician marks a technician rejected, recording the reason.
func (s *DefaultTechnicianService) RejectTechnician(id, reason string) (*models.Technician, error) {
	if reason == "" {
		return nil, utils.Validationf("a rejection reason is required")
	}
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch technician: %w", err)
	}
	if t == nil {
		return nil, utils.NotFoundf("technician not found")
	}

	update := bson.M{
		"status":           models.TechnicianRejected,
		"rejection_reason": reason,
		"updated_at":       time.Now(),
	}
	if err := s.Repo.UpdateWithDocument(id, update); err != nil {
		return nil, fmt.Errorf("failed to reject technician: %w", err)
	}
	utils.GetLogger().Info("technician rejected", zap.String("technicianID", id), zap.String("reason", reason))
	return s.GetTechnicianByID(id)
}

// DeleteTechnician removes a technician account.
func (s *DefaultTechnicianService) DeleteTechnician(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete technician: %w", err)
	}
	return nil
}
