package handlers

import (
	"RadiologyCenter/middlewares"
	"RadiologyCenter/services"
	"RadiologyCenter/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates a new, inactive user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req utils.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req)
	if err != nil {
		if services.IsAuthError(err) {
			c.JSON(400, gin.H{"success": false, "error": err.Error()})
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(201, user)
}

// Login authenticates the user and returns a bearer token with the
// caller's identity.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	result, err := h.service.Login(c.Request.Context(), credentials.Username, credentials.Password)
	if err != nil {
		if services.IsAuthError(err) {
			c.JSON(401, gin.H{"success": false, "error": err.Error()})
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(200, result)
}

// Logout is a client-side operation; no server state is kept for
// issued tokens.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Logged out"})
}

// ChangePassword re-validates strength and re-hashes for the caller's
// own account.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	userIDStr, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"success": false, "error": "Unauthorized"})
		return
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		if services.IsAuthError(err) {
			c.JSON(400, gin.H{"success": false, "error": err.Error()})
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Password changed"})
}

// SendResetCode emails a reset code. The response is the same whether
// or not the email matches an account.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(400, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if err := h.service.SendResetCode(c.Request.Context(), req.Email); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "If the email exists, a reset code has been sent"})
}

// ResetPassword consumes an emailed code and sets a new password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		if services.IsAuthError(err) {
			c.JSON(400, gin.H{"success": false, "error": err.Error()})
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Password reset"})
}
