package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const messageTag = "message"

var (
	defaults = map[string]string{
		"required": "{field} is required",
		"notblank": "{field} must not be blank",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
	}
)

// messages turns validation errors into one message per failed field, in field order.
// A `message` struct tag on the field wins over the per-rule default.
func messages(err error, structType reflect.Type) []string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []string{err.Error()}
	}

	result := make([]string, 0, len(valErrors))
	seen := map[string]bool{}

	for _, valErr := range valErrors {
		if seen[valErr.StructNamespace()] {
			continue
		}

		seen[valErr.StructNamespace()] = true
		result = append(result, message(valErr, structType))
	}

	return result
}

func message(valErr val.FieldError, structType reflect.Type) string {
	if structType != nil && structType.Kind() == reflect.Struct {
		if field, ok := structType.FieldByName(valErr.StructField()); ok {
			if custom := field.Tag.Get(messageTag); custom != "" {
				return custom
			}
		}
	}

	msg := defaults[valErr.Tag()]
	if msg == "" {
		return valErr.Error()
	}

	msg = strings.ReplaceAll(msg, "{field}", valErr.Field())
	msg = strings.ReplaceAll(msg, "{param}", valErr.Param())

	return msg
}
