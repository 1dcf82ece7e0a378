package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sharedhouse/shared/failure"
	"sharedhouse/shared/timezone"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const (
	tagRequired = "required"
	tagInstant  = "instant"
	tagDay      = "day"
)

var validate *val.Validate

func registerInstantValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.ParseInstant(str)

	return err == nil
}

func registerDayValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.ParseDay(str)

	return err == nil
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation(tagInstant, registerInstantValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation(tagDay, registerDayValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. An empty body is reported as missing data.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	err := decoder.Decode(data)
	if errors.Is(err, io.EOF) {
		return failure.DataMissing("request body is required") //nolint:wrapcheck
	}

	if err != nil {
		return failure.InvalidData(fmt.Sprintf("failed to decode request body: %v", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	return toFailure(validate.Struct(data))
}

func ValidateVar(field any, tag string) error {
	return toFailure(validate.Var(field, tag))
}

func toFailure(err error) error {
	if err == nil {
		return nil
	}

	msg := message(err)

	var valErrors val.ValidationErrors
	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if valErr.Tag() == tagRequired {
				return failure.DataMissing(msg) //nolint:wrapcheck
			}
		}
	}

	return failure.InvalidData(msg) //nolint:wrapcheck
}
