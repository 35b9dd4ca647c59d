package handlers

import (
	"RadiologyCenter/models"
	"RadiologyCenter/services"

	"github.com/gin-gonic/gin"
)

type ExaminationHandler struct {
	service *services.ExaminationService
}

func NewExaminationHandler(service *services.ExaminationService) *ExaminationHandler {
	return &ExaminationHandler{service: service}
}

func (h *ExaminationHandler) CreateExamination(c *gin.Context) {
	var examination models.Examination
	if err := c.ShouldBindJSON(&examination); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), actor(c), &examination); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, examination)
}

func (h *ExaminationHandler) GetExaminationByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	examination, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, examination)
}

func (h *ExaminationHandler) GetAllExaminations(c *gin.Context) {
	examinations, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, examinations)
}

func (h *ExaminationHandler) GetPagedExaminations(c *gin.Context) {
	page := parsePage(c)
	unitID, ok := parseUintQuery(c, "unitId")
	if !ok {
		return
	}
	examinations, total, err := h.service.GetPaged(c.Request.Context(), page, unitID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, PagedResponse{TotalCount: total, Items: examinations})
}

func (h *ExaminationHandler) UpdateExamination(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var examination models.Examination
	if err := c.ShouldBindJSON(&examination); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := h.service.Update(c.Request.Context(), actor(c), id, &examination); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, examination)
}

// DeleteExamination returns 409 while any appointment still references
// the examination.
func (h *ExaminationHandler) DeleteExamination(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Examination deleted"})
}
