package validator

import (
	"encoding/json"
	"io"
	"reflect"
	"strings"

	"todoapi/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	err := validate.RegisterValidation("notblank", func(fl val.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return true
		}

		return strings.TrimSpace(field.String()) != ""
	})

	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. A body that is not valid JSON is a bad request;
// a decoded struct that breaks its rules yields an unprocessable failure listing every
// broken field.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode reads JSON from r into data without running validation rules. The decoder's
// error only goes to the log; the caller gets failure.InvalidRequestBody.
func Decode[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		log.Warn().Err(err).Msg("failed to decode request body")

		return failure.InvalidRequestBody
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return failure.Unprocessable(messages(err, reflect.TypeOf(data).Elem())) //nolint:wrapcheck
	}

	return nil
}
