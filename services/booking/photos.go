package booking

import (
	"fmt"

	"coolq/models"
	"coolq/utils"
)

// MaxJobPhotosPerUpload caps how many photos one upload call may attach.
const MaxJobPhotosPerUpload = 5

// AttachJobPhotos appends already-uploaded photo URLs to a booking. Photos may
// be attached at any point before the job is completed or cancelled; attaching
// them does not change the booking status.
func (s *DefaultBookingService) AttachJobPhotos(technicianID, bookingID string, photoURLs []string) (*models.Booking, error) {
	if len(photoURLs) == 0 {
		return nil, utils.Validationf("no photos provided")
	}
	if len(photoURLs) > MaxJobPhotosPerUpload {
		return nil, utils.Validationf("at most %d photos may be uploaded at once", MaxJobPhotosPerUpload)
	}

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

	ok, err := s.BookingRepo.AppendJobPhotos(bookingID, photoURLs)
	if err != nil {
		return nil, fmt.Errorf("failed to attach job photos: %w", err)
	}
	if !ok {
		return nil, utils.Validationf("photos cannot be added to a finished booking")
	}
	return s.BookingRepo.GetByID(bookingID)
}
