package customer

import (
	"fmt"
	"time"

	"coolq/models"
	"coolq/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetCustomerByID fetches one customer, with credentials stripped.
func (s *DefaultCustomerService) GetCustomerByID(id string) (*models.Customer, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	if c == nil {
		return nil, utils.NotFoundf("customer not found")
	}
	c.PasswordHash = ""
	c.TokenHash = ""
	return c, nil
}

// UpdateCustomer updates non-empty customer fields using a partial update.
func (s *DefaultCustomerService) UpdateCustomer(c models.Customer) (*models.Customer, error) {
	logger := utils.GetLogger()

	if c.ID == "" {
		return nil, utils.Validationf("customer ID is required for update")
	}

	updateFields := bson.M{
		"updated_at": time.Now(),
	}
	if c.Name != "" {
		updateFields["name"] = c.Name
	}
	if c.PhoneNumber != "" {
		updateFields["phone_number"] = c.PhoneNumber
	}
	if c.Address != "" {
		updateFields["address"] = c.Address
	}
	if c.District != "" {
		updateFields["district"] = c.District
	}
	if len(updateFields) == 1 {
		return nil, utils.Validationf("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(c.ID, updateFields); err != nil {
		logger.Error("failed to update customer", zap.String("customerID", c.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return s.GetCustomerByID(c.ID)
}

// GetAllCustomers lists every customer for the admin back-office.
func (s *DefaultCustomerService) GetAllCustomers() ([]models.Customer, error) {
	customers, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	for i := range customers {
		customers[i].PasswordHash = ""
		customers[i].TokenHash = ""
	}
	return customers, nil
}

// DeleteCustomer removes a customer account.
func (s *DefaultCustomerService) DeleteCustomer(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
