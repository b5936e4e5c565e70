package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var customerNameRgx = regexp.MustCompile(`^[\p{L}][\p{L} .'-]*$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("customer_name", validateCustomerName)

	return validator
}

func validateCustomerName(fl validator.FieldLevel) bool {
	name := fl.Field().String()

	if len(name) < 2 || len(name) > 100 {
		return false
	}

	return customerNameRgx.MatchString(name)
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "customer_name":
		return "must be 2 to 100 characters and contain only letters, spaces, dots, apostrophes, and hyphens"
	default:
		return "is invalid"
	}
}
