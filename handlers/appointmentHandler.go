package handlers

import (
	"RadiologyCenter/repositories"
	"RadiologyCenter/services"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req services.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	appointment, err := h.service.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	appointment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appointments, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, appointments)
}

// GetPagedAppointments combines the optional patientId, status,
// examinationId and unitId filters; absent filters are ignored.
func (h *AppointmentHandler) GetPagedAppointments(c *gin.Context) {
	page := parsePage(c)
	patientID, ok := parseUintQuery(c, "patientId")
	if !ok {
		return
	}
	examinationID, ok := parseUintQuery(c, "examinationId")
	if !ok {
		return
	}
	unitID, ok := parseUintQuery(c, "unitId")
	if !ok {
		return
	}
	filter := repositories.AppointmentFilter{
		PatientID:     patientID,
		Status:        c.Query("status"),
		ExaminationID: examinationID,
		UnitID:        unitID,
	}
	appointments, total, err := h.service.GetPaged(c.Request.Context(), page, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, PagedResponse{TotalCount: total, Items: appointments})
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req services.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	appointment, err := h.service.Update(c.Request.Context(), actor(c), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Appointment deleted"})
}
