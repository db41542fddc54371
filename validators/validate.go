// Package validators holds the request-validation middleware. Each handler
// parses the {"data": ...} payload, runs the struct rules, and hands the
// validated form to the controller through c.Locals.
package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field errors under their json names so the browser can match
	// them to form inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldErrors flattens validator output into a field -> message map.
// Nested fields keep their path, e.g. "modules[0].lessons[1].title".
func fieldErrors(err error) map[string]string {
	errs := make(map[string]string)

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["request"] = "Invalid request body!"
		return errs
	}

	for _, e := range verrs {
		// Namespace starts with the struct type name; strip it.
		field := e.Namespace()
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}

		switch e.Tag() {
		case "required":
			errs[field] = fmt.Sprintf("%s is required!", e.Field())
		case "min":
			errs[field] = fmt.Sprintf("%s must be at least %s characters long!", e.Field(), e.Param())
		case "email":
			errs[field] = "A valid email address is required!"
		case "gte":
			errs[field] = fmt.Sprintf("%s must not be negative!", e.Field())
		default:
			errs[field] = fmt.Sprintf("%s is invalid!", e.Field())
		}
	}
	return errs
}
