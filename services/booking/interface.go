package booking

import (
	"time"

	catalogRepo "coolq/database/repository/catalog"
	customerRepo "coolq/database/repository/customer"
	technicianRepo "coolq/database/repository/technician"

	bookingRepo "coolq/database/repository/booking"

	"coolq/models"
)

// ServiceSelection is one requested line item of a new booking.
type ServiceSelection struct {
	ServiceID     string `json:"serviceId" binding:"required"`
	CapacityLabel string `json:"capacityLabel"`
	Quantity      int    `json:"quantity"`
}

// CreateBookingRequest carries the validated input of CreateBooking.
type CreateBookingRequest struct {
	ScheduledAt time.Time          `json:"scheduledAt" binding:"required"`
	Address     string             `json:"address" binding:"required"`
	Description string             `json:"description"`
	Selections  []ServiceSelection `json:"selections" binding:"required,min=1,dive"`
}

// AssignedTechnician is the contact card returned to the customer at creation.
type AssignedTechnician struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// BookingConfirmation is the success output of CreateBooking.
type BookingConfirmation struct {
	BookingID  string             `json:"bookingId"`
	Technician AssignedTechnician `json:"technician"`
	TotalPrice float64            `json:"totalPrice"`
}

// BookingService drives bookings through creation and their status lifecycle.
type BookingService interface {
	CreateBooking(customerID string, req CreateBookingRequest) (*BookingConfirmation, error)

	AcceptBooking(technicianID, bookingID string) (*models.Booking, error)
	RejectBooking(technicianID, bookingID string) (*models.Booking, error)
	SetOnTheWay(technicianID, bookingID string) (*models.Booking, error)
	SetWorking(technicianID, bookingID string) (*models.Booking, error)
	CompleteBooking(technicianID, bookingID, notes string, finalPrice *float64) (*models.Booking, error)
	AttachJobPhotos(technicianID, bookingID string, photoURLs []string) (*models.Booking, error)

	CancelBooking(customerID, bookingID string) (*models.Booking, error)

	AdminSetStatus(bookingID, status string) (*models.Booking, error)
	AdminMarkPaid(bookingID string) (*models.Booking, error)

	GetBookingForActor(actorID, role, bookingID string) (*models.Booking, error)
	ListCustomerBookings(customerID string) ([]models.Booking, error)
	ListTechnicianBookings(technicianID, status string) ([]models.Booking, error)
	ListAllBookings() ([]models.Booking, error)
}

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	BookingRepo    bookingRepo.BookingRepository
	CustomerRepo   customerRepo.CustomerRepository
	TechnicianRepo technicianRepo.TechnicianRepository
	CatalogRepo    catalogRepo.CatalogRepository
}
