package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BodyField is the key used for failures that cannot be tied to one field.
const BodyField = "body"

// FieldErrors maps a binding error to field name -> message. Every invalid
// field is listed, not only the first.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var validationErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &validationErrs):
		for _, fe := range validationErrs {
			fields[fe.Field()] = message(fe)
		}
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			fields[BodyField] = fmt.Sprintf("Expected %s", typeErr.Type)
		} else {
			fields[typeErr.Field] = fmt.Sprintf("%s should be of type %s", label(typeErr.Field), typeErr.Type)
		}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		fields[BodyField] = "Malformed JSON request body"
	case errors.Is(err, io.EOF):
		fields[BodyField] = "Request body is required"
	default:
		fields[BodyField] = err.Error()
	}

	return fields
}

func message(fe validator.FieldError) string {
	name := label(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "notblank":
		return name + " should not be blank"
	case "personname":
		return name + " should be alphabets"
	case "pastdate":
		return "Date should not be in future"
	case "datetime":
		return name + " should be a date in YYYY-MM-DD format"
	case "email":
		return name + " should be a valid email"
	case "semver":
		return name + " should be in major.minor.patch format"
	case "min", "gte":
		if isString(fe) {
			return fmt.Sprintf("%s should have at least %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s should be at least %s", name, fe.Param())
	case "max", "lte":
		if isString(fe) {
			return fmt.Sprintf("%s should have at most %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s should be at most %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s check", name, fe.Tag())
	}
}

func isString(fe validator.FieldError) bool {
	return fe.Kind() == reflect.String
}

// label turns a json key such as "phoneNumber" into "PhoneNumber".
func label(field string) string {
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
