package utils

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	JWTSecretKey string

	// AuthCookieMaxAge bounds both the cookie and the token lifetime.
	AuthCookieMaxAge = 7 * 24 * time.Hour
)

// AuthCookieName is the HTTP-only cookie carrying the signed admin session.
const AuthCookieName = "auth"

func InitJWT() {
	// For tests, use a default secret if the environment isn't set
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}
}

// GenerateAdminToken issues the signed token stored in the auth cookie
// after a successful password check.
func GenerateAdminToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "admin",
		"iss": "portfolio",
		"iat": now.Unix(),
		"exp": now.Add(AuthCookieMaxAge).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(JWTSecretKey))
}

// ValidateAdminToken checks signature, issuer and expiry of an auth
// cookie value.
func ValidateAdminToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(JWTSecretKey), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid token claims")
	}
	if iss, _ := claims["iss"].(string); iss != "portfolio" {
		return errors.New("invalid token issuer")
	}
	if sub, _ := claims["sub"].(string); sub != "admin" {
		return errors.New("invalid token subject")
	}
	return nil
}
