package handlers

import (
	"net/http"

	"coolq/models"
	"coolq/services/catalog"
	"coolq/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the public service catalog and its admin CRUD.
type CatalogHandler struct {
	CatalogService catalog.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{CatalogService: svc}
}

// ListServicesHandler handles GET /api/services (active entries only).
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.CatalogService.ListActiveServices()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.CatalogService.GetServiceByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// AdminListServicesHandler handles GET /api/admin/services.
func (h *CatalogHandler) AdminListServicesHandler(c *gin.Context) {
	services, err := h.CatalogService.ListAllServices()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// AdminCreateServiceHandler handles POST /api/admin/services.
func (h *CatalogHandler) AdminCreateServiceHandler(c *gin.Context) {
	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	created, err := h.CatalogService.CreateService(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AdminUpdateServiceHandler handles PATCH /api/admin/services/:id.
func (h *CatalogHandler) AdminUpdateServiceHandler(c *gin.Context) {
	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	req.ID = c.Param("id")
	updated, err := h.CatalogService.UpdateService(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AdminSetServiceActiveHandler handles PUT /api/admin/services/:id/active.
func (h *CatalogHandler) AdminSetServiceActiveHandler(c *gin.Context) {
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	updated, err := h.CatalogService.SetServiceActive(c.Param("id"), *req.Active)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
