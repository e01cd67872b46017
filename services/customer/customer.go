package customer

import (
	customerRepo "coolq/database/repository/customer"

	"coolq/models"
)

// AuthResponse is the success payload of registration and login.
type AuthResponse struct {
	Customer *models.Customer `json:"customer"`
	Token    string           `json:"token"`
}

// CustomerService manages customer accounts and authentication.
type CustomerService interface {
	RegisterCustomer(c models.Customer) (*AuthResponse, error)
	AuthenticateCustomer(email, password string) (*AuthResponse, error)
	GetCustomerByID(id string) (*models.Customer, error)
	UpdateCustomer(c models.Customer) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	DeleteCustomer(id string) error
}

// DefaultCustomerService is the production implementation of CustomerService.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}
