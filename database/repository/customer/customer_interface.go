package customerRepo

import (
	"coolq/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CustomerRepository defines methods for customer data access.
type CustomerRepository interface {
	// GetByID retrieves a customer by its unique ID.
	GetByID(id string) (*models.Customer, error)
	// GetByEmail retrieves a customer by its email address.
	GetByEmail(email string) (*models.Customer, error)
	// GetAll retrieves all customers.
	GetAll() ([]models.Customer, error)
	// Create inserts a new customer record.
	Create(customer *models.Customer) error
	// UpdateWithDocument patches a customer document with the specified update fields.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Delete removes a customer record by its ID.
	Delete(id string) error
}
