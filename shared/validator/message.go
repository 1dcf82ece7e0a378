package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"uuid":     "{field} must be a valid UUID",
		"instant":  "{field} must be an ISO-8601 date time with offset",
		"day":      "{field} must be formatted as YYYY-MM-DD",
	}
)

// message renders the first validation error, preferring required failures
// so missing data is reported before malformed data.
func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if valErr.Tag() == tagRequired {
				return render(valErr)
			}
		}

		for _, valErr := range valErrors {
			if msg := render(valErr); msg != "" {
				return msg
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return ""
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())

	return strings.ReplaceAll(errStr, "{param}", valErr.Param())
}
