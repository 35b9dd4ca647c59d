package handlers

import (
	"RadiologyCenter/models"
	"RadiologyCenter/services"

	"github.com/gin-gonic/gin"
)

type PatientContractHandler struct {
	service *services.PatientContractService
}

func NewPatientContractHandler(service *services.PatientContractService) *PatientContractHandler {
	return &PatientContractHandler{service: service}
}

func (h *PatientContractHandler) CreatePatientContract(c *gin.Context) {
	var enrollment models.PatientContract
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

func (h *PatientContractHandler) GetPatientContractByID(c *gin.Context) {
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

func (h *PatientContractHandler) GetAllPatientContracts(c *gin.Context) {
	enrollments, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, enrollments)
}

func (h *PatientContractHandler) GetPagedPatientContracts(c *gin.Context) {
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

func (h *PatientContractHandler) UpdatePatientContract(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var enrollment models.PatientContract
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

func (h *PatientContractHandler) DeletePatientContract(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Patient contract deleted"})
}
