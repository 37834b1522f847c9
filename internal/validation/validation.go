// Package validation registers the custom binding rules used by the request
// DTOs and turns binding failures into per-field messages.
package validation

import (
	"log"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

var (
	personNamePattern = regexp.MustCompile(`^[a-zA-Z]+( [a-zA-Z]+)*$`)
	semverPattern     = regexp.MustCompile(`^\d+(\.\d+){2}$`)

	registerOnce sync.Once
)

// now is replaced in tests.
var now = time.Now

var personName validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	return ok && personNamePattern.MatchString(value)
}

var notBlank validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	return ok && strings.TrimSpace(value) != ""
}

var semver validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	return ok && semverPattern.MatchString(value)
}

// pastDate accepts today or any earlier day.
var pastDate validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return false
	}
	today, _ := time.Parse(DateLayout, now().Format(DateLayout))
	return !date.After(today)
}

// Register installs the custom rules on gin's validator. Safe to call more
// than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Println("Binding validator is not go-playground/validator, custom rules not registered")
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)
		v.RegisterValidation("personname", personName)
		v.RegisterValidation("notblank", notBlank)
		v.RegisterValidation("semver", semver)
		v.RegisterValidation("pastdate", pastDate)
	})
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
