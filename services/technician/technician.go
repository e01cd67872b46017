package technician

import (
	technicianRepo "coolq/database/repository/technician"

	"coolq/models"
)

// AuthResponse is the success payload of registration and login.
type AuthResponse struct {
	Technician *models.Technician `json:"technician"`
	Token      string             `json:"token"`
}

// TechnicianService manages technician accounts, profiles and approval.
type TechnicianService interface {
	RegisterTechnician(t models.Technician) (*AuthResponse, error)
	AuthenticateTechnician(email, password string) (*AuthResponse, error)
	GetTechnicianByID(id string) (*models.Technician, error)
	UpdateTechnician(t models.Technician) (*models.Technician, error)
	GetAllTechnicians(status string) ([]models.Technician, error)
	ApproveTechnician(id string) (*models.Technician, error)
	RejectTechnician(id, reason string) (*models.Technician, error)
	DeleteTechnician(id string) error
}

// DefaultTechnicianService is the production implementation of TechnicianService.
type DefaultTechnicianService struct {
	Repo technicianRepo.TechnicianRepository
}
