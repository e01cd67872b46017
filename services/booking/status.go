package booking

import (
	"fmt"
	"time"

	"coolq/models"
	"coolq/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// TechnicianRejectedNote is recorded on a booking a technician turned down.
const TechnicianRejectedNote = "Rejected by technician"

// AcceptBooking moves a pending booking to accepted. The update is conditional
// on both ownership and the pending status, so only one of two racing accepts
// can win. Re-accepting an already accepted booking is a rejected no-op.
func (s *DefaultBookingService) AcceptBooking(technicianID, bookingID string) (*models.Booking, error) {
	ok, err := s.BookingRepo.TransitionStatus(bookingID, technicianID, models.BookingPending, models.BookingAccepted, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to accept booking: %w", err)
	}
	if !ok {
		b, err := s.BookingRepo.GetByID(bookingID)
		if err != nil {
			return nil, fmt.Errorf("failed to accept booking: %w", err)
		}
		switch {
		case b == nil:
			return nil, utils.NotFoundf("booking not found")
		case b.TechnicianID != technicianID:
			return nil, utils.Forbiddenf("booking is not assigned to you")
		default:
			return nil, utils.Conflictf("booking is already %s", b.Status)
		}
	}

	utils.GetLogger().Info("booking accepted",
		zap.String("bookingID", bookingID), zap.String("technicianID", technicianID))
	return s.BookingRepo.GetByID(bookingID)
}

// RejectBooking lets the assigned technician turn down a still-pending booking.
func (s *DefaultBookingService) RejectBooking(technicianID, bookingID string) (*models.Booking, error) {
	extra := bson.M{"technician_notes": TechnicianRejectedNote}
	ok, err := s.BookingRepo.TransitionStatus(bookingID, technicianID, models.BookingPending, models.BookingCancelled, extra)
	if err != nil {
		return nil, fmt.Errorf("failed to reject booking: %w", err)
	}
	if !ok {
		b, err := s.BookingRepo.GetByID(bookingID)
		if err != nil {
			return nil, fmt.Errorf("failed to reject booking: %w", err)
		}
		switch {
		case b == nil:
			return nil, utils.NotFoundf("booking not found")
		case b.TechnicianID != technicianID:
			return nil, utils.Forbiddenf("booking is not assigned to you")
		default:
			return nil, utils.Validationf("only pending bookings can be rejected")
		}
	}
	return s.BookingRepo.GetByID(bookingID)
}

// SetOnTheWay marks the technician as travelling to the job.
func (s *DefaultBookingService) SetOnTheWay(technicianID, bookingID string) (*models.Booking, error) {
	return s.technicianTransition(technicianID, bookingID, models.BookingOnTheWay, nil)
}

// SetWorking marks the job as in progress.
func (s *DefaultBookingService) SetWorking(technicianID, bookingID string) (*models.Booking, error) {
	return s.technicianTransition(technicianID, bookingID, models.BookingWorking, nil)
}

// CompleteBooking finishes a job: it stores the technician's notes verbatim,
// records the final price and stamps completed_at.
func (s *DefaultBookingService) CompleteBooking(technicianID, bookingID, notes string, finalPrice *float64) (*models.Booking, error) {
	if finalPrice == nil {
		return nil, utils.Validationf("final price is required to complete a booking")
	}
	if *finalPrice < 0 {
		return nil, utils.Validationf("final price must not be negative")
	}
	extra := bson.M{
		"completed_at":     time.Now(),
		"technician_notes": notes,
		"final_price":      *finalPrice,
	}
	b, err := s.technicianTransition(technicianID, bookingID, models.BookingCompleted, extra)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("booking completed",
		zap.String("bookingID", bookingID),
		zap.String("technicianID", technicianID),
		zap.Float64("finalPrice", *finalPrice))
	return b, nil
}

// technicianTransition reads the booking, checks ownership and the lifecycle
// table, then applies the change conditionally on the observed status. A missed
// conditional update means a concurrent writer got there first.
func (s *DefaultBookingService) technicianTransition(technicianID, bookingID, target string, extra bson.M) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, utils.NotFoundf("booking not found")
	}
	if b.TechnicianID != technicianID {
		return nil, utils.Forbiddenf("booking is not assigned to you")
	}
	if !models.TechnicianCanTransition(b.Status, target) {
		return nil, utils.Validationf("cannot move booking from %s to %s", b.Status, target)
	}

	ok, err := s.BookingRepo.TransitionStatus(bookingID, technicianID, b.Status, target, extra)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if !ok {
		return nil, utils.Conflictf("booking status changed concurrently, please retry")
	}
	return s.BookingRepo.GetByID(bookingID)
}

// CancelBooking cancels a customer's own booking, permitted only while it is
// still pending.
func (s *DefaultBookingService) CancelBooking(customerID, bookingID string) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, utils.NotFoundf("booking not found")
	}
	if b.CustomerID != customerID {
		return nil, utils.Forbiddenf("booking does not belong to you")
	}
	if b.Status != models.BookingPending {
		return nil, utils.Validationf("only pending bookings can be cancelled")
	}

	ok, err := s.BookingRepo.TransitionStatus(bookingID, "", models.BookingPending, models.BookingCancelled, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	if !ok {
		return nil, utils.Validationf("only pending bookings can be cancelled")
	}
	return s.BookingRepo.GetByID(bookingID)
}

// AdminSetStatus overwrites a booking's status directly. Used for manual
// dispute resolution; no transition legality is enforced beyond the status
// being a known one.
func (s *DefaultBookingService) AdminSetStatus(bookingID, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, utils.Validationf("unknown booking status %q", status)
	}
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, utils.NotFoundf("booking not found")
	}
	update := bson.M{"status": status, "updated_at": time.Now()}
	if err := s.BookingRepo.UpdateWithDocument(bookingID, update); err != nil {
		return nil, fmt.Errorf("failed to set booking status: %w", err)
	}
	utils.GetLogger().Warn("admin status override",
		zap.String("bookingID", bookingID),
		zap.String("from", b.Status),
		zap.String("to", status))
	return s.BookingRepo.GetByID(bookingID)
}

// AdminMarkPaid flips a booking's payment status to paid.
func (s *DefaultBookingService) AdminMarkPaid(bookingID string) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, utils.NotFoundf("booking not found")
	}
	update := bson.M{"payment_status": models.PaymentPaid, "updated_at": time.Now()}
	if err := s.BookingRepo.UpdateWithDocument(bookingID, update); err != nil {
		return nil, fmt.Errorf("failed to mark booking paid: %w", err)
	}
	return s.BookingRepo.GetByID(bookingID)
}
