package handlers

import (
	"RadiologyCenter/middlewares"
	"RadiologyCenter/repositories"
	"RadiologyCenter/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PagedResponse is the envelope for every paged query.
type PagedResponse struct {
	TotalCount int64       `json:"totalCount"`
	Items      interface{} `json:"items"`
}

// parseID reads a numeric :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middlewares.RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

func parseID64(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middlewares.RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}

// parsePage reads pageNumber/pageSize query parameters; missing or
// malformed values fall back to the defaults.
func parsePage(c *gin.Context) repositories.PageRequest {
	number, _ := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	return repositories.PageRequest{Number: number, Size: size}.Normalize()
}

// parseUintQuery reads an optional uint query parameter, nil when absent.
func parseUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		middlewares.RespondError(c, http.StatusBadRequest, "invalid "+name, nil)
		return nil, false
	}
	converted := uint(value)
	return &converted, true
}

// actor returns the authenticated username for audit stamping. Routes
// behind TokenAuthMiddleware always have one.
func actor(c *gin.Context) string {
	username, err := middlewares.ExtractUsernameFromContext(c.Request.Context())
	if err != nil {
		return "unknown"
	}
	return username
}

// respondServiceError maps domain errors onto HTTP status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case services.IsNotFound(err):
		middlewares.RespondError(c, http.StatusNotFound, err.Error(), nil)
	case services.IsValidation(err):
		middlewares.RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, repositories.ErrExaminationInUse):
		middlewares.RespondError(c, http.StatusConflict, err.Error(), nil)
	default:
		middlewares.RespondError(c, http.StatusInternalServerError, "internal server error", err)
	}
}
