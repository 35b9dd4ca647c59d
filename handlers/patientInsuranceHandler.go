package handlers

import (
	"RadiologyCenter/models"
	"RadiologyCenter/services"

	"github.com/gin-gonic/gin"
)

type PatientInsuranceHandler struct {
	service *services.PatientInsuranceService
}

func NewPatientInsuranceHandler(service *services.PatientInsuranceService) *PatientInsuranceHandler {
	return &PatientInsuranceHandler{service: service}
}

func (h *PatientInsuranceHandler) CreatePatientInsurance(c *gin.Context) {
	var enrollment models.PatientInsurance
	if err := c.ShouldBindJSON(&enrollment); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), actor(c), &enrollment); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, enrollment)
}

func (h *PatientInsuranceHandler) GetPatientInsuranceByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	enrollment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, enrollment)
}

func (h *PatientInsuranceHandler) GetAllPatientInsurances(c *gin.Context) {
	enrollments, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, enrollments)
}

func (h *PatientInsuranceHandler) GetPagedPatientInsurances(c *gin.Context) {
	page := parsePage(c)
	patientID, ok := parseUintQuery(c, "patientId")
	if !ok {
		return
	}
	enrollments, total, err := h.service.GetPaged(c.Request.Context(), page, patientID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, PagedResponse{TotalCount: total, Items: enrollments})
}

func (h *PatientInsuranceHandler) UpdatePatientInsurance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var enrollment models.PatientInsurance
	if err := c.ShouldBindJSON(&enrollment); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := h.service.Update(c.Request.Context(), actor(c), id, &enrollment); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, enrollment)
}

func (h *PatientInsuranceHandler) DeletePatientInsurance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Patient insurance deleted"})
}
