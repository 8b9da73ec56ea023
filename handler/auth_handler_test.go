package handler_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"main/handler"
	"main/middleware"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()

	os.Setenv("GO_ENV", "test")
	os.Setenv("ADMIN_PASSWORD", "letmein")
	os.Unsetenv("ADMIN_PASSWORD_HASH")
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	utils.InitJWT()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/login", handler.LoginHandler)
	router.POST("/api/auth/logout", handler.LogoutHandler)
	router.GET("/api/auth/status", handler.AuthStatusHandler)
	return router
}

func authCookie(t *testing.T, resp *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == utils.AuthCookieName {
			return cookie
		}
	}
	return nil
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.Code, http.StatusUnauthorized)
	}
	if authCookie(t, resp) != nil {
		t.Error("failed login should not set the auth cookie")
	}
}

func TestLoginCountsAuthAttempts(t *testing.T) {
	router := setupAuthRouter(t)

	failures := middleware.AuthAttempts.WithLabelValues("failure")
	successes := middleware.AuthAttempts.WithLabelValues("success")
	failuresBefore := testutil.ToFloat64(failures)
	successesBefore := testutil.ToFloat64(successes)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)

	if got := testutil.ToFloat64(failures); got != failuresBefore+1 {
		t.Errorf("failure count = %v, want %v", got, failuresBefore+1)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"password":"letmein"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)

	if got := testutil.ToFloat64(successes); got != successesBefore+1 {
		t.Errorf("success count = %v, want %v", got, successesBefore+1)
	}
}

func TestLoginMissingPassword(t *testing.T) {
	router := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.Code, http.StatusBadRequest)
	}
}

func TestLoginAndStatus(t *testing.T) {
	router := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"password":"letmein"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("login status = %d, want %d: %s", resp.Code, http.StatusOK, resp.Body.String())
	}

	cookie := authCookie(t, resp)
	if cookie == nil {
		t.Fatal("login should set the auth cookie")
	}
	if !cookie.HttpOnly {
		t.Error("auth cookie should be http-only")
	}

	// Status with the cookie reports authenticated
	req = httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.AddCookie(cookie)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusOK)
	}
	if !strings.Contains(resp.Body.String(), `"authenticated":true`) {
		t.Errorf("expected authenticated true, got %s", resp.Body.String())
	}
}

func TestStatusWithoutCookie(t *testing.T) {
	router := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusOK)
	}
	if !strings.Contains(resp.Body.String(), `"authenticated":false`) {
		t.Errorf("expected authenticated false, got %s", resp.Body.String())
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	router := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusOK)
	}
	cookie := authCookie(t, resp)
	if cookie == nil {
		t.Fatal("logout should rewrite the auth cookie")
	}
	if cookie.MaxAge >= 0 {
		t.Errorf("logout cookie max-age = %d, want negative", cookie.MaxAge)
	}
}
