package review

import (
	"errors"
	"fmt"
	"time"

	bookingRepo "coolq/database/repository/booking"
	reviewRepo "coolq/database/repository/review"
	technicianRepo "coolq/database/repository/technician"

	"coolq/models"
	"coolq/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ratingFoldAttempts bounds the compare-and-swap retry loop when folding a new
// rating into a technician's running mean under concurrent reviews.
const ratingFoldAttempts = 5

// ReviewService creates reviews for completed bookings and keeps the reviewed
// technician's running rating consistent.
type ReviewService interface {
	CreateReview(customerID, bookingID string, rating float64, comment string) (*models.Review, error)
	GetTechnicianReviews(technicianID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation of ReviewService.
type DefaultReviewService struct {
	ReviewRepo     reviewRepo.ReviewRepository
	BookingRepo    bookingRepo.BookingRepository
	TechnicianRepo technicianRepo.TechnicianRepository
}

// CreateReview validates ownership, completion and uniqueness, persists the
// review, folds its rating into the technician's mean and marks the booking
// reviewed.
func (s *DefaultReviewService) CreateReview(customerID, bookingID string, rating float64, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, utils.Validationf("rating must be between 1 and 5")
	}

	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil || b.CustomerID != customerID {
		return nil, utils.Validationf("booking not found")
	}
	if b.Status != models.BookingCompleted {
		return nil, utils.Validationf("only completed bookings can be reviewed")
	}

	existing, err := s.ReviewRepo.GetByBookingID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if existing != nil {
		return nil, utils.Validationf("booking has already been reviewed")
	}

	rev := &models.Review{
		ID:           uuid.New().String(),
		BookingID:    bookingID,
		CustomerID:   customerID,
		TechnicianID: b.TechnicianID,
		Rating:       rating,
		Comment:      comment,
		CreatedAt:    time.Now(),
	}
	if err := s.ReviewRepo.Create(rev); err != nil {
		var dup *reviewRepo.DuplicateReviewError
		if errors.As(err, &dup) {
			// Lost the race against a concurrent submission; the unique index
			// on booking_id made this insert the losing one.
			return nil, utils.Validationf("booking has already been reviewed")
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.foldRating(b.TechnicianID, rating); err != nil {
		// Back out the insert so the booking stays reviewable on retry.
		if delErr := s.ReviewRepo.Delete(rev.ID); delErr != nil {
			utils.GetLogger().Error("failed to roll back review after rating fold failure",
				zap.String("reviewID", rev.ID), zap.Error(delErr))
		}
		return nil, err
	}

	if err := s.BookingRepo.UpdateWithDocument(bookingID, bson.M{"has_review": true, "updated_at": time.Now()}); err != nil {
		return nil, fmt.Errorf("failed to flag booking as reviewed: %w", err)
	}

	utils.GetLogger().Info("review created",
		zap.String("bookingID", bookingID),
		zap.String("technicianID", b.TechnicianID),
		zap.Float64("rating", rating))
	return rev, nil
}

// foldRating recomputes the technician's mean from the stored values and
// applies it with a compare-and-swap on total_reviews, retrying when a
// concurrent fold moved the base values first.
func (s *DefaultReviewService) foldRating(technicianID string, rating float64) error {
	for attempt := 0; attempt < ratingFoldAttempts; attempt++ {
		tech, err := s.TechnicianRepo.GetByID(technicianID)
		if err != nil {
			return fmt.Errorf("failed to fetch technician: %w", err)
		}
		if tech == nil {
			return utils.NotFoundf("technician not found")
		}

		oldTotal := tech.TotalReviews
		newTotal := oldTotal + 1
		newMean := (tech.Rating*float64(oldTotal) + rating) / float64(newTotal)

		ok, err := s.TechnicianRepo.UpdateRatingIf(technicianID, oldTotal, newMean, newTotal)
		if err != nil {
			return fmt.Errorf("failed to update technician rating: %w", err)
		}
		if ok {
			return nil
		}
	}
	return fmt.Errorf("rating update for technician %s kept losing the swap after %d attempts", technicianID, ratingFoldAttempts)
}

// GetTechnicianReviews lists a technician's reviews, newest first.
func (s *DefaultReviewService) GetTechnicianReviews(technicianID string) ([]models.Review, error) {
	return s.ReviewRepo.GetByTechnician(technicianID)
}
