package handlers

import (
	"net/http"

	"coolq/services/booking"
	"coolq/services/customer"
	"coolq/services/technician"
	"coolq/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the back-office endpoints.
type AdminHandler struct {
	CustomerService   customer.CustomerService
	TechnicianService technician.TechnicianService
	BookingService    booking.BookingService
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(custSvc customer.CustomerService, techSvc technician.TechnicianService, bookingSvc booking.BookingService) *AdminHandler {
	return &AdminHandler{
		CustomerService:   custSvc,
		TechnicianService: techSvc,
		BookingService:    bookingSvc,
	}
}

// GetAllCustomersHandler handles GET /api/admin/customers.
func (h *AdminHandler) GetAllCustomersHandler(c *gin.Context) {
	customers, err := h.CustomerService.GetAllCustomers()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetAllTechniciansHandler handles GET /api/admin/technicians, with an optional
// status query filter.
func (h *AdminHandler) GetAllTechniciansHandler(c *gin.Context) {
	technicians, err := h.TechnicianService.GetAllTechnicians(c.Query("status"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, technicians)
}

// ApproveTechnicianHandler handles PUT /api/admin/technicians/:id/approve.
func (h *AdminHandler) ApproveTechnicianHandler(c *gin.Context) {
	tech, err := h.TechnicianService.ApproveTechnician(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tech)
}

// RejectTechnicianHandler handles PUT /api/admin/technicians/:id/reject.
func (h *AdminHandler) RejectTechnicianHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	tech, err := h.TechnicianService.RejectTechnician(c.Param("id"), req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tech)
}

// GetAllBookingsHandler handles GET /api/admin/bookings.
func (h *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.ListAllBookings()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// SetBookingStatusHandler handles PUT /api/admin/bookings/:id/status. Used for
// manual dispute resolution; any known status may be set directly.
func (h *AdminHandler) SetBookingStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	b, err := h.BookingService.AdminSetStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// MarkBookingPaidHandler handles PUT /api/admin/bookings/:id/paid.
func (h *AdminHandler) MarkBookingPaidHandler(c *gin.Context) {
	b, err := h.BookingService.AdminMarkPaid(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
