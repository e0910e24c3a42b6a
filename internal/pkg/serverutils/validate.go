package serverutils

import (
	"errors"
	"strings"

	"notekeep-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and turns the first failure
// into a client-facing 400.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return apperror.BadRequest(field + " is required")
		case "email":
			return apperror.BadRequest(field + " must be a valid email address")
		default:
			return apperror.BadRequest(field + " is invalid")
		}
	}
	return apperror.BadRequest("Invalid request body")
}
