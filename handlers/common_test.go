package handlers

import (
	"RadiologyCenter/repositories"
	"RadiologyCenter/services"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func serviceErrorStatus(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondServiceError(c, err)
	return w
}

func TestRespondServiceErrorNotFound(t *testing.T) {
	w := serviceErrorStatus(t, services.ErrPatientNotFound)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRespondServiceErrorValidation(t *testing.T) {
	w := serviceErrorStatus(t, &services.ValidationError{Message: "invalid status \"Paused\""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRespondServiceErrorExaminationInUse(t *testing.T) {
	w := serviceErrorStatus(t, repositories.ErrExaminationInUse)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for a referenced examination, got %d", w.Code)
	}
}

func TestRespondServiceErrorWrappedExaminationInUse(t *testing.T) {
	wrapped := errors.Join(errors.New("delete examination 4"), repositories.ErrExaminationInUse)
	w := serviceErrorStatus(t, wrapped)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for a wrapped in-use error, got %d", w.Code)
	}
}

func TestRespondServiceErrorUnexpected(t *testing.T) {
	w := serviceErrorStatus(t, errors.New("connection refused"))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Errorf("internal detail leaked to the client: %s", w.Body.String())
	}
}
