package services

import (
	"bytes"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Constants for Argon2 parameters
const (
	memory      = 64 * 1024
	iterations  = 3
	parallelism = 2
	keyLength   = 32
)

func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", errors.New("password must be at least 8 characters")
	}

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.New("failed to generate salt")
	}

	hash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)

	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHash := base64.RawStdEncoding.EncodeToString(hash)

	return encodedSalt + "$" + encodedHash, nil
}

// VerifyPassword verifies the provided password against a salt$hash pair.
func VerifyPassword(storedPassword, providedPassword string) (bool, error) {
	parts := strings.Split(storedPassword, "$")
	if len(parts) != 2 {
		return false, errors.New("invalid stored password format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false, err
	}

	storedHash, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, err
	}

	hash := argon2.IDKey([]byte(providedPassword), salt, iterations, memory, parallelism, keyLength)
	return bytes.Equal(hash, storedHash), nil
}

// CheckAdminPassword verifies the dashboard password. ADMIN_PASSWORD_HASH
// takes precedence when set; otherwise the plain ADMIN_PASSWORD is
// compared in constant time.
func CheckAdminPassword(provided string) (bool, error) {
	if hashed := os.Getenv("ADMIN_PASSWORD_HASH"); hashed != "" {
		return VerifyPassword(hashed, provided)
	}

	plain := os.Getenv("ADMIN_PASSWORD")
	if plain == "" {
		return false, errors.New("admin password not configured")
	}
	return subtle.ConstantTimeCompare([]byte(plain), []byte(provided)) == 1, nil
}
