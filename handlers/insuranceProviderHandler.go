package handlers

import (
	"RadiologyCenter/models"
	"RadiologyCenter/services"

	"github.com/gin-gonic/gin"
)

type InsuranceProviderHandler struct {
	service *services.InsuranceProviderService
}

func NewInsuranceProviderHandler(service *services.InsuranceProviderService) *InsuranceProviderHandler {
	return &InsuranceProviderHandler{service: service}
}

func (h *InsuranceProviderHandler) CreateInsuranceProvider(c *gin.Context) {
	var provider models.InsuranceProvider
	if err := c.ShouldBindJSON(&provider); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), actor(c), &provider); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, provider)
}

func (h *InsuranceProviderHandler) GetInsuranceProviderByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	provider, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, provider)
}

func (h *InsuranceProviderHandler) GetAllInsuranceProviders(c *gin.Context) {
	providers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, providers)
}

func (h *InsuranceProviderHandler) GetPagedInsuranceProviders(c *gin.Context) {
	page := parsePage(c)
	providers, total, err := h.service.GetPaged(c.Request.Context(), page)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, PagedResponse{TotalCount: total, Items: providers})
}

func (h *InsuranceProviderHandler) UpdateInsuranceProvider(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var provider models.InsuranceProvider
	if err := c.ShouldBindJSON(&provider); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := h.service.Update(c.Request.Context(), actor(c), id, &provider); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, provider)
}

func (h *InsuranceProviderHandler) DeleteInsuranceProvider(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Insurance provider deleted"})
}
