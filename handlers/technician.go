package handlers

import (
	"net/http"

	"coolq/models"
	"coolq/services/technician"
	"coolq/utils"

	"github.com/gin-gonic/gin"
)

// TechnicianHandler exposes technician account and profile endpoints.
type TechnicianHandler struct {
	TechnicianService technician.TechnicianService
}

// NewTechnicianHandler creates a new TechnicianHandler instance.
func NewTechnicianHandler(svc technician.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{TechnicianService: svc}
}

// RegisterTechnicianHandler handles POST /api/technicians/register.
func (h *TechnicianHandler) RegisterTechnicianHandler(c *gin.Context) {
	var req models.Technician
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	resp, err := h.TechnicianService.RegisterTechnician(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginTechnicianHandler handles POST /api/technicians/login.
func (h *TechnicianHandler) LoginTechnicianHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	resp, err := h.TechnicianService.AuthenticateTechnician(req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTechnicianProfileHandler handles GET /api/technicians/me.
func (h *TechnicianHandler) GetTechnicianProfileHandler(c *gin.Context) {
	actorID := c.GetString("actorID")
	tech, err := h.TechnicianService.GetTechnicianByID(actorID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tech)
}

// UpdateTechnicianProfileHandler handles PATCH /api/technicians/me.
func (h *TechnicianHandler) UpdateTechnicianProfileHandler(c *gin.Context) {
	var req models.Technician
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	req.ID = c.GetString("actorID")
	updated, err := h.TechnicianService.UpdateTechnician(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetTechnicianByIDHandler handles GET /api/technicians/id/:id (public card:
// name, districts, service types, rating).
func (h *TechnicianHandler) GetTechnicianByIDHandler(c *gin.Context) {
	tech, err := h.TechnicianService.GetTechnicianByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":           tech.ID,
		"name":         tech.Name,
		"districts":    tech.Districts,
		"serviceTypes": tech.ServiceTypes,
		"rating":       tech.Rating,
		"totalReviews": tech.TotalReviews,
	})
}
