package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance for DTO structs
var Validate = validator.New()

// ValidationErrorsToMap flattens validator.v10 errors into the shape
// JsonValidationError expects.
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "email":
			msg = "must be a valid email address"
		case "min":
			msg = "must be at least " + fe.Param() + " characters"
		case "max":
			msg = "must be at most " + fe.Param() + " characters"
		case "oneof":
			msg = "must be one of: " + fe.Param()
		case "gt":
			msg = "must be greater than " + fe.Param()
		default:
			msg = "is invalid (" + fe.Tag() + ")"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
