// Package models contains the data models for the application to be used in request handling.
package models

// Layouts used for task dates and server timestamps.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Task represents a task in the system.
// Task has the following properties:
// - Id: The unique identifier of the task.
// - Title: The title of the task.
// - Priority: The priority of the task, "high", "low" or any other caller-defined value.
// - Completed: Whether the task is done.
// - DueDate: The calendar date the task is due, formatted as YYYY-MM-DD.
// - CreatedAt: The time the task was seeded, formatted as YYYY-MM-DD HH:MM:SS.
type Task struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"due_date"`
	CreatedAt string `json:"created_at"`
}
