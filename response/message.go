// Package response contains the JSON bodies written by the handlers.
package response

import (
	"encoding/json"
	"net/http"

	"TaskFilterService/models"
)

// Texts returned to callers.
const (
	PreferencesSaved       = "Filter preferences saved successfully"
	PreferencesCleared     = "Preferences cleared successfully"
	InvalidDateFormat      = "Invalid date format"
	NoPreferencesProvided  = "No preferences provided"
	FailedToSave           = "Failed to save preferences"
	FailedToClear          = "Failed to clear preferences"
	ErrorSavingPrefix      = "Error saving preferences"
	ErrorLoadingPrefix     = "Error loading preferences"
	ErrorClearingPrefix    = "Error clearing preferences"
	ErrorFilteringPrefix   = "Error filtering tasks"
	TooManyRequestsMessage = "The API is at capacity, try again later."
)

// Message is the body of a successful write operation.
type Message struct {
	Message string `json:"message"`
}

// Error is the body of every failed request.
type Error struct {
	Error string `json:"error"`
}

// FilteredTasks is the body of a filter tasks response.
type FilteredTasks struct {
	FilteredTasks []models.Task `json:"filtered_tasks"`
}

// WriteJSON encodes v as the response body with the given status code.
func WriteJSON(res http.ResponseWriter, status int, v interface{}) error {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	return json.NewEncoder(res).Encode(v)
}
