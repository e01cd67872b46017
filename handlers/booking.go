package handlers

import (
	"net/http"
	"os"

	"coolq/services/booking"
	"coolq/services/storage"
	"coolq/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
	StorageSvc     storage.StorageService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService, storageSvc storage.StorageService) *BookingHandler {
	return &BookingHandler{BookingService: svc, StorageSvc: storageSvc}
}

// CreateBookingHandler handles POST /api/bookings (customer).
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	confirmation, err := h.BookingService.CreateBooking(c.GetString("actorID"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, confirmation)
}

// ListMyBookingsHandler handles GET /api/bookings (customer).
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.ListCustomerBookings(c.GetString("actorID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /api/bookings/:id for both parties.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.BookingService.GetBookingForActor(c.GetString("actorID"), c.GetString("actorRole"), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler handles PUT /api/bookings/:id/cancel (customer).
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	b, err := h.BookingService.CancelBooking(c.GetString("actorID"), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListJobsHandler handles GET /api/jobs (technician), with an optional status
// query filter.
func (h *BookingHandler) ListJobsHandler(c *gin.Context) {
	bookings, err := h.BookingService.ListTechnicianBookings(c.GetString("actorID"), c.Query("status"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// AcceptBookingHandler handles PUT /api/jobs/:id/accept (technician).
func (h *BookingHandler) AcceptBookingHandler(c *gin.Context) {
	b, err := h.BookingService.AcceptBooking(c.GetString("actorID"), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// RejectBookingHandler handles PUT /api/jobs/:id/reject (technician).
func (h *BookingHandler) RejectBookingHandler(c *gin.Context) {
	b, err := h.BookingService.RejectBooking(c.GetString("actorID"), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// SetOnTheWayHandler handles PUT /api/jobs/:id/on-the-way (technician).
func (h *BookingHandler) SetOnTheWayHandler(c *gin.Context) {
	b, err := h.BookingService.SetOnTheWay(c.GetString("actorID"), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// SetWorkingHandler handles PUT /api/jobs/:id/working (technician).
func (h *BookingHandler) SetWorkingHandler(c *gin.Context) {
	b, err := h.BookingService.SetWorking(c.GetString("actorID"), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompleteBookingHandler handles PUT /api/jobs/:id/complete (technician).
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	var req struct {
		Notes      string   `json:"notes"`
		FinalPrice *float64 `json:"finalPrice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	b, err := h.BookingService.CompleteBooking(c.GetString("actorID"), c.Param("id"), req.Notes, req.FinalPrice)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UploadJobPhotosHandler handles POST /api/jobs/:id/photos (technician). The
// multipart files are staged locally, pushed to image storage and their URLs
// appended to the booking.
func (h *BookingHandler) UploadJobPhotosHandler(c *gin.Context) {
	logger := utils.GetLogger()

	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid multipart form", err.Error())
		return
	}
	files := form.File["photos"]
	if len(files) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "no photos provided", "attach files under the 'photos' field")
		return
	}
	if len(files) > booking.MaxJobPhotosPerUpload {
		utils.JSONError(c, http.StatusBadRequest, "too many photos", "at most 5 photos may be uploaded at once")
		return
	}

	bookingID := c.Param("id")
	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		tempFilePath, err := stageUpload(c, fileHeader)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to save file", err.Error())
			return
		}

		url, err := h.StorageSvc.UploadFile(c, tempFilePath, "bookings/"+bookingID)
		os.Remove(tempFilePath)
		if err != nil {
			logger.Error("job photo upload failed", zap.String("bookingID", bookingID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to upload photo", err.Error())
			return
		}
		urls = append(urls, url)
	}

	b, err := h.BookingService.AttachJobPhotos(c.GetString("actorID"), bookingID, urls)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
