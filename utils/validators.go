package utils

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("actionurl", ValidateActionURLRule)
	}
}

func ValidateActionURLRule(fl validator.FieldLevel) bool {
	return ValidateActionURL(fl.Field().String())
}

var actionURLRe = regexp.MustCompile(`^/[a-zA-Z0-9\-._~:/?#\[\]@!$&'()*+,;=%]*$`)

// ValidateActionURL accepts only site-relative paths for notification
// action links.
func ValidateActionURL(value string) bool {
	if value == "" {
		return true
	}
	return actionURLRe.MatchString(value)
}

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}
