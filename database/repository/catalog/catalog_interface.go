package catalogRepo

import (
	"coolq/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CatalogRepository defines methods for service-catalog data access.
type CatalogRepository interface {
	// GetByID retrieves a catalog entry by its unique ID.
	GetByID(id string) (*models.Service, error)
	// GetAll retrieves every catalog entry, active or not.
	GetAll() ([]models.Service, error)
	// GetActive retrieves only entries selectable for new bookings.
	GetActive() ([]models.Service, error)
	// Create inserts a new catalog entry.
	Create(service *models.Service) error
	// UpdateWithDocument patches a catalog entry with the specified update fields.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Delete removes a catalog entry by its ID.
	Delete(id string) error
}
