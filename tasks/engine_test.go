package tasks

import (
	"errors"
	"testing"
	"time"

	"TaskFilterService/models"
)

var seedTime = time.Date(2024, time.March, 9, 14, 30, 0, 0, time.Local)

func newTestEngine() *Engine {
	return NewEngine(Seed(seedTime))
}

func ids(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Id)
	}
	return out
}

func sameIDs(got []models.Task, want ...string) bool {
	g := ids(got)
	if len(g) != len(want) {
		return false
	}
	for i := range g {
		if g[i] != want[i] {
			return false
		}
	}
	return true
}

func boolPtr(b bool) *bool { return &b }

func TestSeed(t *testing.T) {
	seed := Seed(seedTime)
	if len(seed) != 3 {
		t.Fatalf("Expected 3 seeded tasks, got %d", len(seed))
	}
	if seed[0].DueDate != "2024-03-09" || seed[2].DueDate != "2024-03-10" {
		t.Errorf("Expected due dates today and tomorrow, got %s and %s", seed[0].DueDate, seed[2].DueDate)
	}
	for _, task := range seed {
		if task.CreatedAt != "2024-03-09 14:30:00" {
			t.Errorf("Expected created_at 2024-03-09 14:30:00, got %s", task.CreatedAt)
		}
	}
}

func TestFilterNoCriteria(t *testing.T) {
	got, err := newTestEngine().Filter(Criteria{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !sameIDs(got, "1", "2", "3") {
		t.Errorf("Expected all tasks in order, got %v", ids(got))
	}
}

func TestFilterByPriority(t *testing.T) {
	engine := newTestEngine()
	cases := map[string][]string{
		"high": {"1", "2"},
		"low":  {"3"},
		"High": {},
	}
	for priority, want := range cases {
		got, err := engine.Filter(Criteria{Priority: priority})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !sameIDs(got, want...) {
			t.Errorf("Expected %v for priority %q, got %v", want, priority, ids(got))
		}
		for _, task := range got {
			if task.Priority != priority {
				t.Errorf("Expected priority %q, got %q", priority, task.Priority)
			}
		}
	}
}

func TestFilterByCompleted(t *testing.T) {
	engine := newTestEngine()
	got, _ := engine.Filter(Criteria{Completed: boolPtr(true)})
	if !sameIDs(got, "1") {
		t.Errorf("Expected only task 1, got %v", ids(got))
	}
	got, _ = engine.Filter(Criteria{Completed: boolPtr(false)})
	if !sameIDs(got, "2", "3") {
		t.Errorf("Expected tasks 2 and 3, got %v", ids(got))
	}
}

func TestFilterByDueDate(t *testing.T) {
	engine := newTestEngine()
	got, err := engine.Filter(Criteria{DueDate: "2024-03-09"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !sameIDs(got, "1", "2") {
		t.Errorf("Expected tasks due today, got %v", ids(got))
	}
	got, _ = engine.Filter(Criteria{DueDate: "2030-01-01"})
	if len(got) != 0 {
		t.Errorf("Expected no tasks, got %v", ids(got))
	}
}

func TestFilterInvalidDate(t *testing.T) {
	got, err := newTestEngine().Filter(Criteria{DueDate: "not-a-date"})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("Expected ErrInvalidDate, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected no results on error, got %v", ids(got))
	}
}

func TestFilterIntersection(t *testing.T) {
	engine := newTestEngine()
	got, _ := engine.Filter(Criteria{Priority: "high", Completed: boolPtr(false)})
	if !sameIDs(got, "2") {
		t.Errorf("Expected only task 2, got %v", ids(got))
	}
	got, _ = engine.Filter(Criteria{Priority: "low", DueDate: "2024-03-09"})
	if len(got) != 0 {
		t.Errorf("Expected no tasks, got %v", ids(got))
	}
}

func TestFilterDoesNotMutateTable(t *testing.T) {
	engine := newTestEngine()
	got, _ := engine.Filter(Criteria{})
	got[0].Title = "changed"
	again, _ := engine.Filter(Criteria{})
	if again[0].Title != "High Priority Complete" {
		t.Errorf("Expected seed to be untouched, got %q", again[0].Title)
	}
}
