package bookingRepo

import (
	"coolq/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines methods for booking data access. Status transitions
// are expressed as conditional updates so racing writers cannot both win.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByCustomer retrieves a customer's bookings, newest first.
	GetByCustomer(customerID string) ([]models.Booking, error)
	// GetByTechnician retrieves a technician's assigned bookings, newest first,
	// optionally filtered by status.
	GetByTechnician(technicianID, status string) ([]models.Booking, error)
	// GetAll retrieves every booking, newest first.
	GetAll() ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// TransitionStatus atomically moves a booking from one status to another,
	// applying extra $set fields alongside. Returns false when the booking was
	// not in the expected status (or not owned by the expected technician when
	// technicianID is non-empty).
	TransitionStatus(id, technicianID, from, to string, extra bson.M) (bool, error)
	// UpdateWithDocument patches a booking document with the specified update fields.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// AppendJobPhotos pushes photo URLs onto a booking that has not yet finished.
	// Returns false when the booking is absent or already completed/cancelled.
	AppendJobPhotos(id string, urls []string) (bool, error)
}
