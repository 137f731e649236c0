package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"TaskFilterService/models"
	"TaskFilterService/response"
	"TaskFilterService/validation"
)

// maxPreferenceBody bounds the size of a saved preference set.
const maxPreferenceBody = 1 << 20

// SavePreferencesHandler handles the HTTP request for saving filter preferences.
// The request body is any non-empty JSON object. The server adds a "timestamp"
// field and the object replaces whatever was saved before; preferences are never appended.
//
// Example request body:
//
//	{
//	  "priority": "high",
//	  "due_date": "2024-03-09",
//	  "completed": "pending"
//	}
//
// Example response:
//
//	{
//	  "message": "Filter preferences saved successfully"
//	}
//
// An empty body or an empty JSON value (null, false, 0, "", [] or {}) is answered with
// Bad Request and "No preferences provided". Malformed JSON or a non-empty value that is
// not an object is answered with Internal Server Error and "Error saving preferences: <detail>",
// and a failed write with "Failed to save preferences".
// Numbers are kept as written, so large integers are saved exactly.
func (h *Handler) SavePreferencesHandler(res http.ResponseWriter, req *http.Request) {
	const endpoint = "/save_filter_preferences"
	const operation = "save preferences"

	body, err := io.ReadAll(http.MaxBytesReader(res, req.Body, maxPreferenceBody))
	if err != nil {
		h.fail(res, req, endpoint, operation, http.StatusInternalServerError, response.ErrorSavingPrefix+": "+err.Error())
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		h.fail(res, req, endpoint, operation, http.StatusBadRequest, response.NoPreferencesProvided)
		return
	}

	var decoded interface{}
	if err := models.Decode(body, &decoded); err != nil {
		h.fail(res, req, endpoint, operation, http.StatusInternalServerError, response.ErrorSavingPrefix+": "+err.Error())
		return
	}
	if err := validation.Preferences(h.validate, decoded); err != nil {
		h.fail(res, req, endpoint, operation, http.StatusBadRequest, response.NoPreferencesProvided)
		return
	}
	object, ok := decoded.(map[string]interface{})
	if !ok {
		h.fail(res, req, endpoint, operation, http.StatusInternalServerError,
			fmt.Sprintf("%s: preference set must be a JSON object, got %s", response.ErrorSavingPrefix, jsonKind(decoded)))
		return
	}
	prefs := models.Preference(object)

	if err := h.Store.Save(req.Context(), prefs); err != nil {
		h.fail(res, req, endpoint, operation, http.StatusInternalServerError, response.FailedToSave)
		return
	}

	h.logger(req, operation, endpoint).WithField("request body", string(body)).Info("Processing request")
	response.WriteJSON(res, http.StatusOK, response.Message{Message: response.PreferencesSaved})
}

// GetSavedPreferencesHandler handles the HTTP request for reading the saved preferences.
// The store answers with the empty document when it cannot be read, so this
// handler only fails on an unexpected fault.
//
// Example response:
//
//	{
//	  "saved_preferences": [
//	    {
//	      "priority": "high",
//	      "timestamp": "2024-03-09 14:31:07"
//	    }
//	  ]
//	}
func (h *Handler) GetSavedPreferencesHandler(res http.ResponseWriter, req *http.Request) {
	doc := h.Store.Load(req.Context()).Normalize()
	h.logger(req, "get saved preferences", "/get_saved_preferences").
		WithField("saved preferences", len(doc.SavedPreferences)).
		Info("Processing request")
	response.WriteJSON(res, http.StatusOK, doc)
}

// ClearPreferencesHandler handles the HTTP request for removing the saved preferences.
// No request body is needed.
//
// Example response:
//
//	{
//	  "message": "Preferences cleared successfully"
//	}
func (h *Handler) ClearPreferencesHandler(res http.ResponseWriter, req *http.Request) {
	const endpoint = "/clear_preferences"
	const operation = "clear preferences"

	if err := h.Store.Clear(req.Context()); err != nil {
		h.fail(res, req, endpoint, operation, http.StatusInternalServerError, response.FailedToClear)
		return
	}
	h.logger(req, operation, endpoint).Info("Processing request")
	response.WriteJSON(res, http.StatusOK, response.Message{Message: response.PreferencesCleared})
}

// jsonKind names the JSON type of a decoded value.
func jsonKind(v interface{}) string {
	switch v.(type) {
	case []interface{}:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
