package commands

import (
	"net/url"
	"testing"
)

func TestCriteriaCompletedParsing(t *testing.T) {
	cases := map[string]bool{
		"true":    true,
		"True":    true,
		"TRUE":    true,
		"false":   false,
		"garbage": false,
		"":        false,
	}
	for raw, want := range cases {
		query := url.Values{"completed": []string{raw}}
		criteria := NewFilterTasksCommand(query).Criteria()
		if criteria.Completed == nil {
			t.Fatalf("Expected completed filter for %q, got none", raw)
		}
		if *criteria.Completed != want {
			t.Errorf("Expected completed=%v for %q, got %v", want, raw, *criteria.Completed)
		}
	}
}

func TestCriteriaWithoutCompleted(t *testing.T) {
	criteria := NewFilterTasksCommand(url.Values{}).Criteria()
	if criteria.Completed != nil {
		t.Errorf("Expected no completed filter, got %v", *criteria.Completed)
	}
}

func TestCriteriaPriorityAll(t *testing.T) {
	criteria := NewFilterTasksCommand(url.Values{"priority": []string{"all"}}).Criteria()
	if criteria.Priority != "" {
		t.Errorf("Expected priority filter to be disabled, got %q", criteria.Priority)
	}
	criteria = NewFilterTasksCommand(url.Values{"priority": []string{"High"}}).Criteria()
	if criteria.Priority != "High" {
		t.Errorf("Expected priority High to be kept as-is, got %q", criteria.Priority)
	}
}
