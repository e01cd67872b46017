package reviewRepo

import "coolq/models"

// DuplicateReviewError is returned by Create when a review already exists for
// the booking; callers map it to a conflict.
type DuplicateReviewError struct {
	BookingID string
}

func (e *DuplicateReviewError) Error() string {
	return "review already exists for booking " + e.BookingID
}

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review. The unique index on booking_id makes the
	// second of two racing inserts fail with DuplicateReviewError.
	Create(review *models.Review) error
	// GetByBookingID retrieves the review for a booking, or nil when unreviewed.
	GetByBookingID(bookingID string) (*models.Review, error)
	// GetByTechnician retrieves a technician's reviews, newest first.
	GetByTechnician(technicianID string) ([]models.Review, error)
	// Delete removes a review by its ID, backing out an insert whose rating
	// fold could not be applied so the booking stays reviewable.
	Delete(id string) error
}
