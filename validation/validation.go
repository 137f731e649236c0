// Package validation contains custom validation functions for the application to use for input validation.
package validation

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"TaskFilterService/models"
)

// ErrNoPreferences is returned for a preference body that carries nothing.
var ErrNoPreferences = errors.New("no preferences provided")

// New returns a validator with the custom validations of the service registered.
func New() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("isodate", DateValidator)
	return validate
}

// DateValidator checks that the field is a calendar date formatted as YYYY-MM-DD.
func DateValidator(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

// Preferences rejects a decoded preference body that is empty: null, false,
// zero, "", [] or {}. Any other value passes, whether or not it is an object.
func Preferences(validate *validator.Validate, body interface{}) error {
	var err error
	switch v := body.(type) {
	case nil:
		return ErrNoPreferences
	case json.Number:
		f, perr := strconv.ParseFloat(string(v), 64)
		if perr == nil && f == 0 {
			return ErrNoPreferences
		}
		return nil
	case map[string]interface{}:
		err = validate.Var(v, "gt=0")
	case models.Preference:
		err = validate.Var(map[string]interface{}(v), "gt=0")
	case []interface{}:
		err = validate.Var(v, "gt=0")
	default:
		err = validate.Var(v, "required")
	}
	if err != nil {
		return ErrNoPreferences
	}
	return nil
}
