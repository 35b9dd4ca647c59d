package handlers

import (
	"RadiologyCenter/models"
	"RadiologyCenter/services"

	"github.com/gin-gonic/gin"
)

type UnitHandler struct {
	service *services.UnitService
}

func NewUnitHandler(service *services.UnitService) *UnitHandler {
	return &UnitHandler{service: service}
}

func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var unit models.Unit
	if err := c.ShouldBindJSON(&unit); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), actor(c), &unit); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, unit)
}

func (h *UnitHandler) GetUnitByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	unit, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, unit)
}

func (h *UnitHandler) GetAllUnits(c *gin.Context) {
	units, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, units)
}

func (h *UnitHandler) GetPagedUnits(c *gin.Context) {
	page := parsePage(c)
	units, total, err := h.service.GetPaged(c.Request.Context(), page)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, PagedResponse{TotalCount: total, Items: units})
}

func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var unit models.Unit
	if err := c.ShouldBindJSON(&unit); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := h.service.Update(c.Request.Context(), actor(c), id, &unit); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, unit)
}

func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Unit deleted"})
}
