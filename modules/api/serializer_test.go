package api

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/example/tasks-api/modules/task"
)

func TestToTaskResource(t *testing.T) {
	t.Run("all fields set", func(t *testing.T) {
		description := "details"
		status := "in_progress"
		due := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)
		data := &task.TaskData{
			ID:          7,
			Title:       "Full",
			Description: &description,
			Status:      &status,
			DueDate:     &due,
			CreatedAt:   time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2026, 1, 16, 11, 0, 0, 0, time.UTC),
		}

		resource := toTaskResource(data)

		if resource.ID != 7 || resource.Title != "Full" {
			t.Errorf("resource = %+v", resource)
		}
		if resource.DueDate == nil || *resource.DueDate != "2026-12-31T23:59:59Z" {
			t.Errorf("due_date = %v, want 2026-12-31T23:59:59Z", resource.DueDate)
		}
		if resource.CreatedAt != "2026-01-15T10:30:00Z" {
			t.Errorf("created_at = %q", resource.CreatedAt)
		}
		if resource.UpdatedAt != "2026-01-16T11:00:00Z" {
			t.Errorf("updated_at = %q", resource.UpdatedAt)
		}
	})

	t.Run("optional fields serialize as null", func(t *testing.T) {
		data := &task.TaskData{
			ID:        1,
			Title:     "Bare",
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}

		raw, err := json.Marshal(toTaskResource(data))
		if err != nil {
			t.Fatalf("json.Marshal() error = %v", err)
		}

		for _, field := range []string{`"description":null`, `"status":null`, `"due_date":null`} {
			if !strings.Contains(string(raw), field) {
				t.Errorf("expected %s in %s", field, raw)
			}
		}
	})

	t.Run("timestamps are normalized to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*60*60)
		data := &task.TaskData{
			ID:        1,
			Title:     "Zoned",
			CreatedAt: time.Date(2026, 6, 1, 12, 0, 0, 0, loc),
			UpdatedAt: time.Date(2026, 6, 1, 12, 0, 0, 0, loc),
		}

		resource := toTaskResource(data)

		if resource.CreatedAt != "2026-06-01T10:00:00Z" {
			t.Errorf("created_at = %q, want 2026-06-01T10:00:00Z", resource.CreatedAt)
		}
	})
}

func TestNewTaskPage(t *testing.T) {
	base := "http://localhost:3000/api/tasks"

	page := func(current, last int) TaskPage {
		return newTaskPage(base, &task.ListTasksResponse{
			Tasks:       []task.TaskData{},
			Total:       int64(last * 5),
			CurrentPage: current,
			LastPage:    last,
			PerPage:     5,
		})
	}

	t.Run("first page has no prev link", func(t *testing.T) {
		p := page(1, 4)

		if p.Links.Prev != nil {
			t.Errorf("prev = %v, want nil", *p.Links.Prev)
		}
		if p.Links.Next == nil || *p.Links.Next != base+"?page=2&per_page=5" {
			t.Errorf("next = %v", p.Links.Next)
		}
		if p.Links.First != base+"?page=1&per_page=5" {
			t.Errorf("first = %q", p.Links.First)
		}
		if p.Links.Last != base+"?page=4&per_page=5" {
			t.Errorf("last = %q", p.Links.Last)
		}
	})

	t.Run("last page has no next link", func(t *testing.T) {
		p := page(4, 4)

		if p.Links.Next != nil {
			t.Errorf("next = %v, want nil", *p.Links.Next)
		}
		if p.Links.Prev == nil || *p.Links.Prev != base+"?page=3&per_page=5" {
			t.Errorf("prev = %v", p.Links.Prev)
		}
	})

	t.Run("single page has neither prev nor next", func(t *testing.T) {
		p := page(1, 1)

		if p.Links.Prev != nil || p.Links.Next != nil {
			t.Errorf("links = %+v", p.Links)
		}
	})

	t.Run("meta mirrors the response counters", func(t *testing.T) {
		p := page(2, 4)

		if p.Meta.CurrentPage != 2 || p.Meta.LastPage != 4 || p.Meta.PerPage != 5 || p.Meta.Total != 20 {
			t.Errorf("meta = %+v", p.Meta)
		}
	})

	t.Run("empty result still yields a JSON array", func(t *testing.T) {
		raw, err := json.Marshal(page(1, 1))
		if err != nil {
			t.Fatalf("json.Marshal() error = %v", err)
		}
		if !strings.Contains(string(raw), `"data":[]`) {
			t.Errorf("expected empty data array in %s", raw)
		}
	})
}
