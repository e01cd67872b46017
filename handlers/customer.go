package handlers

import (
	"net/http"

	"coolq/models"
	"coolq/services/customer"
	"coolq/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler exposes customer account endpoints.
type CustomerHandler struct {
	CustomerService customer.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler instance.
func NewCustomerHandler(svc customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{CustomerService: svc}
}

// RegisterCustomerHandler handles POST /api/customers/register.
func (h *CustomerHandler) RegisterCustomerHandler(c *gin.Context) {
	var req models.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	resp, err := h.CustomerService.RegisterCustomer(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginCustomerHandler handles POST /api/customers/login.
func (h *CustomerHandler) LoginCustomerHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	resp, err := h.CustomerService.AuthenticateCustomer(req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCustomerProfileHandler handles GET /api/customers/me.
func (h *CustomerHandler) GetCustomerProfileHandler(c *gin.Context) {
	actorID := c.GetString("actorID")
	cust, err := h.CustomerService.GetCustomerByID(actorID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// UpdateCustomerProfileHandler handles PATCH /api/customers/me.
func (h *CustomerHandler) UpdateCustomerProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	req.ID = c.GetString("actorID")
	updated, err := h.CustomerService.UpdateCustomer(req)
	if err != nil {
		logger.Error("failed to update customer profile", zap.String("customerID", req.ID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
