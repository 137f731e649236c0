package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"TaskFilterService/models"
)

type dateHolder struct {
	Date string `validate:"omitempty,isodate"`
}

func TestDateValidator(t *testing.T) {
	validate := New()
	cases := map[string]bool{
		"2024-03-09": true,
		"":           true,
		"not-a-date": false,
		"2024-13-01": false,
		"09-03-2024": false,
	}
	for date, ok := range cases {
		err := validate.Struct(dateHolder{Date: date})
		if ok && err != nil {
			t.Errorf("Expected %q to be valid, got %v", date, err)
		}
		if !ok && err == nil {
			t.Errorf("Expected %q to be rejected", date)
		}
	}
}

func TestPreferences(t *testing.T) {
	validate := New()
	empty := []interface{}{nil, models.Preference{}, map[string]interface{}{}, []interface{}{}, false, "", json.Number("0"), json.Number("0.0"), json.Number("-0")}
	for _, body := range empty {
		if err := Preferences(validate, body); !errors.Is(err, ErrNoPreferences) {
			t.Errorf("Expected %#v to be rejected, got %v", body, err)
		}
	}
	present := []interface{}{models.Preference{"priority": "high"}, map[string]interface{}{"a": 1}, []interface{}{1}, true, "high", json.Number("7")}
	for _, body := range present {
		if err := Preferences(validate, body); err != nil {
			t.Errorf("Expected %#v to be accepted, got %v", body, err)
		}
	}
}
