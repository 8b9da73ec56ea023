package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"main/handler"

	"github.com/gin-gonic/gin"
)

func setupCronRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/outreach/cron/followups", func(c *gin.Context) {
		handler.RunFollowUpCronHandler(c, nil, secret)
	})
	return router
}

func TestCronHandlerRejectsBadSecret(t *testing.T) {
	router := setupCronRouter("s3cret")

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong secret", header: "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/outreach/cron/followups", nil)
			if tt.header != "" {
				req.Header.Set("X-Cron-Secret", tt.header)
			}
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", resp.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestCronHandlerRejectsBadQuerySecret(t *testing.T) {
	router := setupCronRouter("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/api/outreach/cron/followups?secret=nope", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.Code, http.StatusUnauthorized)
	}
}

func TestCronHandlerRejectsWhenSecretUnset(t *testing.T) {
	router := setupCronRouter("")

	req := httptest.NewRequest(http.MethodGet, "/api/outreach/cron/followups", nil)
	req.Header.Set("X-Cron-Secret", "")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.Code, http.StatusUnauthorized)
	}
}
