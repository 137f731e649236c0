package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"TaskFilterService/commands"
	"TaskFilterService/response"
	"TaskFilterService/tasks"
)

// FilterTasksHandler handles the HTTP request for filtering the task table.
// It accepts the optional query parameters "priority", "completed" and "due_date".
//
// - priority keeps the tasks whose priority equals it exactly, unless it is "all".
// - completed keeps completed tasks when it equals "true" in any case, and pending
// tasks for any other value. The parameter only has to be present to filter.
// - due_date keeps the tasks due on that day and must be formatted as YYYY-MM-DD.
//
// Example request:
// GET /filter_tasks?priority=high&completed=false
//
// Example response:
//
//	{
//	  "filtered_tasks": [
//	    {
//	      "id": "2",
//	      "title": "High Priority Pending",
//	      "priority": "high",
//	      "completed": false,
//	      "due_date": "2024-03-09",
//	      "created_at": "2024-03-09 14:30:00"
//	    }
//	  ]
//	}
//
// If due_date cannot be parsed, the response status is set to Bad Request with
// the body {"error": "Invalid date format"}.
func (h *Handler) FilterTasksHandler(res http.ResponseWriter, req *http.Request) {
	const endpoint = "/filter_tasks"
	const operation = "filter tasks"

	cmd := commands.NewFilterTasksCommand(req.URL.Query())
	if err := h.validate.Struct(cmd); err != nil {
		h.fail(res, req, endpoint, operation, http.StatusBadRequest, response.InvalidDateFormat)
		return
	}

	// The validator rejects bad dates first; the engine check covers callers
	// that use tasks.Engine directly.
	filtered, err := h.Engine.Filter(cmd.Criteria())
	if errors.Is(err, tasks.ErrInvalidDate) {
		h.fail(res, req, endpoint, operation, http.StatusBadRequest, response.InvalidDateFormat)
		return
	}
	if err != nil {
		h.fail(res, req, endpoint, operation, http.StatusInternalServerError, response.ErrorFilteringPrefix+": "+err.Error())
		return
	}

	h.logger(req, operation, endpoint).WithFields(logrus.Fields{
		"query":          req.URL.RawQuery,
		"filtered tasks": len(filtered),
	}).Info("Processing request")
	response.WriteJSON(res, http.StatusOK, response.FilteredTasks{FilteredTasks: filtered})
}
