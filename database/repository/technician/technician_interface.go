package technicianRepo

import (
	"coolq/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TechnicianRepository defines methods for technician data access.
type TechnicianRepository interface {
	// GetByID retrieves a technician by its unique ID.
	GetByID(id string) (*models.Technician, error)
	// GetByEmail retrieves a technician by its email address.
	GetByEmail(email string) (*models.Technician, error)
	// GetAll retrieves technicians, optionally filtered by approval status.
	GetAll(status string) ([]models.Technician, error)
	// FirstApprovedInDistrict returns the approved technician with the lowest id
	// whose coverage districts contain the given district, or nil when none match.
	FirstApprovedInDistrict(district string) (*models.Technician, error)
	// Create inserts a new technician record.
	Create(technician *models.Technician) error
	// UpdateWithDocument patches a technician document with the specified update fields.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// UpdateRatingIf sets rating and total_reviews only when the stored
	// total_reviews still equals oldTotal. Returns false when the guard missed.
	UpdateRatingIf(id string, oldTotal int, newRating float64, newTotal int) (bool, error)
	// Delete removes a technician record by its ID.
	Delete(id string) error
}
