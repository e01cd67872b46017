package booking

import (
	"fmt"

	"coolq/models"
	"coolq/utils"
)

// GetBookingForActor fetches one booking, checking the requesting actor is a
// party to it.
func (s *DefaultBookingService) GetBookingForActor(actorID, role, bookingID string) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, utils.NotFoundf("booking not found")
	}
	switch role {
	case utils.RoleCustomer:
		if b.CustomerID != actorID {
			return nil, utils.Forbiddenf("booking does not belong to you")
		}
	case utils.RoleTechnician:
		if b.TechnicianID != actorID {
			return nil, utils.Forbiddenf("booking is not assigned to you")
		}
	}
	return b, nil
}

// ListCustomerBookings returns a customer's bookings, newest first.
func (s *DefaultBookingService) ListCustomerBookings(customerID string) ([]models.Booking, error) {
	return s.BookingRepo.GetByCustomer(customerID)
}

// ListTechnicianBookings returns a technician's assigned bookings, newest
// first, optionally filtered by status.
func (s *DefaultBookingService) ListTechnicianBookings(technicianID, status string) ([]models.Booking, error) {
	if status != "" && !models.ValidBookingStatus(status) {
		return nil, utils.Validationf("unknown booking status %q", status)
	}
	return s.BookingRepo.GetByTechnician(technicianID, status)
}

// ListAllBookings returns every booking for the admin back-office.
func (s *DefaultBookingService) ListAllBookings() ([]models.Booking, error) {
	return s.BookingRepo.GetAll()
}
