package middlewares

import (
	"RadiologyCenter/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newTestRouter(requiredRoles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/secure")
	group.Use(TokenAuthMiddleware())
	if len(requiredRoles) > 0 {
		group.Use(RoleAuthMiddleware(requiredRoles...))
	}
	group.GET("", func(c *gin.Context) {
		username, _ := ExtractUsernameFromContext(c.Request.Context())
		c.JSON(200, gin.H{"username": username})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTokenAuthMissingHeader(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)
	w := doRequest(newTestRouter(), "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestTokenAuthBadScheme(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)
	w := doRequest(newTestRouter(), "Basic abc")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestTokenAuthInvalidToken(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)
	w := doRequest(newTestRouter(), "Bearer garbage")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestTokenAuthValidToken(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)
	token, err := utils.GenerateAccessToken("1", "reception1", "Receptionist")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	w := doRequest(newTestRouter(), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRoleAuthAllowsListedRole(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)
	token, err := utils.GenerateAccessToken("2", "acct", "Accountant")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	w := doRequest(newTestRouter("Accountant", "Administrator"), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRoleAuthForbidsOtherRole(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testKey)
	token, err := utils.GenerateAccessToken("3", "tech", "Technician")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	w := doRequest(newTestRouter("Administrator"), "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}
