package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"sangam/internal/interfaces"
)

// newValidator builds a validator that reports field names by their JSON
// tag, so 400 responses name the field the client actually sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// writeValidationError maps a validation failure to a 400 with the first
// offending field. Typed InvalidFieldErrors from the storage layer take
// the same path.
func writeValidationError(w http.ResponseWriter, err error) {
	var fieldErr *interfaces.InvalidFieldError
	if errors.As(err, &fieldErr) {
		writeFieldError(w, fieldErr.Reason, fieldErr.Field)
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		writeFieldError(w, "Invalid value for "+first.Field(), first.Field())
		return
	}

	writeMessage(w, http.StatusBadRequest, "Invalid request")
}
