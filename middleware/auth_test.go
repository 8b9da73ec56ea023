package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"main/middleware"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func setupProtectedRouter(t *testing.T) *gin.Engine {
	t.Helper()

	os.Setenv("GO_ENV", "test")
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	utils.InitJWT()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAdminAuthMiddlewareRejectsMissingCookie(t *testing.T) {
	router := setupProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.Code, http.StatusUnauthorized)
	}
}

func TestAdminAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	router := setupProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.AuthCookieName, Value: "not-a-token"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.Code, http.StatusUnauthorized)
	}
}

func TestAdminAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router := setupProtectedRouter(t)

	token, err := utils.GenerateAdminToken()
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.AuthCookieName, Value: token})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.Code, http.StatusOK)
	}
}
