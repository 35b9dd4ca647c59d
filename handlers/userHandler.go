package handlers

import (
	"RadiologyCenter/services"

	"github.com/gin-gonic/gin"
)

// UserHandler covers the Administrator-only user management endpoints.
type UserHandler struct {
	service *services.UserService
	audit   *services.AuditService
}

func NewUserHandler(service *services.UserService, audit *services.AuditService) *UserHandler {
	return &UserHandler{service: service, audit: audit}
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, users)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := parseID64(c)
	if !ok {
		return
	}
	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID64(c)
	if !ok {
		return
	}
	var req services.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	user, err := h.service.Update(c.Request.Context(), actor(c), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, user)
}

func (h *UserHandler) ActivateUser(c *gin.Context) {
	id, ok := parseID64(c)
	if !ok {
		return
	}
	if err := h.service.SetActive(c.Request.Context(), actor(c), id, true); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "User activated"})
}

func (h *UserHandler) DeactivateUser(c *gin.Context) {
	id, ok := parseID64(c)
	if !ok {
		return
	}
	if err := h.service.SetActive(c.Request.Context(), actor(c), id, false); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "User deactivated"})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID64(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "User deleted"})
}

// GetAuditHistory lists the audit trail for one entity, newest first.
func (h *UserHandler) GetAuditHistory(c *gin.Context) {
	entityName := c.Param("entity")
	entityID := c.Param("entityId")
	entries, err := h.audit.History(c.Request.Context(), entityName, entityID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, entries)
}
