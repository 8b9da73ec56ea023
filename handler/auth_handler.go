package handler

import (
	"log"
	"net/http"
	"os"

	"main/middleware"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginHandler checks the dashboard password and sets the signed auth
// cookie.
func LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Password is required")
		return
	}

	ok, err := services.CheckAdminPassword(req.Password)
	if err != nil {
		log.Printf("admin password check failed: %v", err)
		utils.InternalError(c, "Login is not available")
		return
	}
	if !ok {
		middleware.TrackAuthAttempt("failure")
		utils.Unauthorized(c, "Invalid password")
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		log.Printf("failed to issue auth token: %v", err)
		utils.InternalError(c, "Failed to create session")
		return
	}

	secure := os.Getenv("GO_ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.AuthCookieName, token, int(utils.AuthCookieMaxAge.Seconds()), "/", "", secure, true)
	middleware.TrackAuthAttempt("success")
	utils.SuccessWithMessage(c, nil, "Logged in")
}

// LogoutHandler clears the auth cookie.
func LogoutHandler(c *gin.Context) {
	secure := os.Getenv("GO_ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.AuthCookieName, "", -1, "/", "", secure, true)
	utils.SuccessWithMessage(c, nil, "Logged out")
}

// AuthStatusHandler reports whether the caller holds a valid session.
func AuthStatusHandler(c *gin.Context) {
	token, err := c.Cookie(utils.AuthCookieName)
	if err != nil || utils.ValidateAdminToken(token) != nil {
		utils.Success(c, gin.H{"authenticated": false})
		return
	}
	utils.Success(c, gin.H{"authenticated": true})
}
