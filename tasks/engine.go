// Package tasks holds the fixed task table and the filter engine that answers
// queries against it.
package tasks

import (
	"errors"
	"time"

	"TaskFilterService/models"
)

// ErrInvalidDate is returned when a due date criterion is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date format")

// Criteria are the optional filters of a query. An empty Priority, a nil
// Completed and an empty DueDate each leave the task set untouched.
type Criteria struct {
	Priority  string
	Completed *bool
	DueDate   string
}

// Engine answers filter queries over a read-only task table.
type Engine struct {
	tasks []models.Task
}

// NewEngine returns an engine over a copy of the given tasks.
func NewEngine(seed []models.Task) *Engine {
	tasks := make([]models.Task, len(seed))
	copy(tasks, seed)
	return &Engine{tasks: tasks}
}

// Seed returns the three tasks the service starts with. Due dates and
// creation times are derived from now, which is taken once at startup.
func Seed(now time.Time) []models.Task {
	today := now.Format(models.DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(models.DateLayout)
	created := now.Format(models.TimestampLayout)
	return []models.Task{
		{Id: "1", Title: "High Priority Complete", Priority: "high", Completed: true, DueDate: today, CreatedAt: created},
		{Id: "2", Title: "High Priority Pending", Priority: "high", Completed: false, DueDate: today, CreatedAt: created},
		{Id: "3", Title: "Low Priority Pending", Priority: "low", Completed: false, DueDate: tomorrow, CreatedAt: created},
	}
}

// All returns every task in seed order.
func (e *Engine) All() []models.Task {
	out := make([]models.Task, len(e.tasks))
	copy(out, e.tasks)
	return out
}

// Filter narrows the task table by priority, then completion, then due date.
// The relative order of the table is preserved.
func (e *Engine) Filter(criteria Criteria) ([]models.Task, error) {
	filtered := e.All()

	if criteria.Priority != "" {
		filtered = keep(filtered, func(task models.Task) bool {
			return task.Priority == criteria.Priority
		})
	}

	if criteria.Completed != nil {
		completed := *criteria.Completed
		filtered = keep(filtered, func(task models.Task) bool {
			return task.Completed == completed
		})
	}

	if criteria.DueDate != "" {
		due, err := time.Parse(models.DateLayout, criteria.DueDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		filtered = keep(filtered, func(task models.Task) bool {
			taskDue, err := time.Parse(models.DateLayout, task.DueDate)
			return err == nil && taskDue.Equal(due)
		})
	}

	return filtered, nil
}

func keep(in []models.Task, pred func(models.Task) bool) []models.Task {
	out := make([]models.Task, 0, len(in))
	for _, task := range in {
		if pred(task) {
			out = append(out, task)
		}
	}
	return out
}
