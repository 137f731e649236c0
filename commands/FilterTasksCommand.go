// Package commands contains the commands for the application to be used for request inputs.
package commands

import (
	"net/url"
	"strings"

	"TaskFilterService/tasks"
)

// PriorityAll is the priority value that disables the priority filter.
const PriorityAll = "all"

// FilterTasksCommand represents the query of a filter tasks request.
// HasCompleted records whether the completed parameter was present at all,
// an empty value still filters on completed=false.
type FilterTasksCommand struct {
	Priority     string `json:"priority"`
	Completed    string `json:"completed"`
	HasCompleted bool   `json:"-"`
	DueDate      string `json:"due_date" validate:"omitempty,isodate"`
}

// NewFilterTasksCommand reads the filter parameters from a request query.
func NewFilterTasksCommand(query url.Values) FilterTasksCommand {
	return FilterTasksCommand{
		Priority:     query.Get("priority"),
		Completed:    query.Get("completed"),
		HasCompleted: query.Has("completed"),
		DueDate:      query.Get("due_date"),
	}
}

// Criteria converts the command into filter engine criteria.
func (c FilterTasksCommand) Criteria() tasks.Criteria {
	criteria := tasks.Criteria{DueDate: c.DueDate}
	if c.Priority != PriorityAll {
		criteria.Priority = c.Priority
	}
	if c.HasCompleted {
		completed := strings.EqualFold(c.Completed, "true")
		criteria.Completed = &completed
	}
	return criteria
}
