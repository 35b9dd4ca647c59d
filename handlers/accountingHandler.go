package handlers

import (
	"RadiologyCenter/models"
	"RadiologyCenter/services"

	"github.com/gin-gonic/gin"
)

type AccountingHandler struct {
	service *services.AccountingService
}

func NewAccountingHandler(service *services.AccountingService) *AccountingHandler {
	return &AccountingHandler{service: service}
}

// GetRevenueReport returns total revenue and the per-method breakdown.
func (h *AccountingHandler) GetRevenueReport(c *gin.Context) {
	report, err := h.service.BuildReport(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, report)
}

func (h *AccountingHandler) CreatePayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	created, err := h.service.CreatePayment(c.Request.Context(), actor(c), &payment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, created)
}

func (h *AccountingHandler) GetPaymentByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payment, err := h.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, payment)
}

// GetPaymentByAppointmentID looks up the payment attached to one
// appointment.
func (h *AccountingHandler) GetPaymentByAppointmentID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payment, err := h.service.GetPaymentByAppointment(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, payment)
}

func (h *AccountingHandler) GetAllPayments(c *gin.Context) {
	payments, err := h.service.GetAllPayments(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, payments)
}

func (h *AccountingHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	updated, err := h.service.UpdatePayment(c.Request.Context(), actor(c), id, &payment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *AccountingHandler) DeletePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePayment(c.Request.Context(), actor(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Payment deleted"})
}
