package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":         "{field} is required",
	"required_unless":  "{field} is required",
	"required_without": "{field} is required",
	"gt":               "{field} must be greater than {param}",
	"gte":              "{field} must be greater than or equal to {param}",
	"lte":              "{field} must be less than or equal to {param}",
	"oneof":            "{field} must be one of {param}",
	"max":              "{field} must be at most {param}",
	"min":              "{field} must be at least {param}",
	"email":            "{field} must be a valid email address",
	"datetime":         "{field} must match the format {param}",
	"mimetypes":        "{field} must be one of {param}",
	"maxfilesize":      "{field} must not exceed {param} MB",
}

// message describes the first failed rule that has a template, falling back to
// the validator's own text.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		tmpl, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(tmpl)
	}

	return valErrors.Error()
}
