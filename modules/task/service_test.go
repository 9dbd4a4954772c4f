package task

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// newTestModule builds a task module backed by an in-memory database, the
// way the running application wires it after Start.
func newTestModule(t *testing.T, defaultStatus string) *Module {
	t.Helper()

	db := setupTestDB(t)
	m := &Module{
		db:   db,
		repo: NewRepository(db),
	}
	if defaultStatus != "" {
		m.defaultStatus = &defaultStatus
	}
	return m
}

func TestService_CreateTask(t *testing.T) {
	t.Run("assigns system fields", func(t *testing.T) {
		m := newTestModule(t, "")

		desc := "the description"
		due := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)
		resp, err := m.createTask(context.Background(), CreateTaskRequest{
			Title:       "New Task",
			Description: &desc,
			DueDate:     &due,
		}, nil)
		if err != nil {
			t.Fatalf("createTask() error = %v", err)
		}

		if resp.ID == 0 {
			t.Error("expected an assigned id")
		}
		if resp.Title != "New Task" {
			t.Errorf("title = %q, want %q", resp.Title, "New Task")
		}
		if resp.Description == nil || *resp.Description != desc {
			t.Errorf("description = %v, want %q", resp.Description, desc)
		}
		if resp.DueDate == nil || !resp.DueDate.Equal(due) {
			t.Errorf("due date = %v, want %v", resp.DueDate, due)
		}
		if resp.CreatedAt.IsZero() || resp.UpdatedAt.IsZero() {
			t.Error("expected timestamps to be assigned")
		}
	})

	t.Run("status stays null without a configured default", func(t *testing.T) {
		m := newTestModule(t, "")

		resp, err := m.createTask(context.Background(), CreateTaskRequest{Title: "t"}, nil)
		if err != nil {
			t.Fatalf("createTask() error = %v", err)
		}
		if resp.Status != nil {
			t.Errorf("status = %v, want nil", *resp.Status)
		}
	})

	t.Run("configured default status applies when omitted", func(t *testing.T) {
		m := newTestModule(t, "pending")

		resp, err := m.createTask(context.Background(), CreateTaskRequest{Title: "t"}, nil)
		if err != nil {
			t.Fatalf("createTask() error = %v", err)
		}
		if resp.Status == nil || *resp.Status != "pending" {
			t.Errorf("status = %v, want pending", resp.Status)
		}
	})

	t.Run("explicit status wins over the default", func(t *testing.T) {
		m := newTestModule(t, "pending")

		status := "completed"
		resp, err := m.createTask(context.Background(), CreateTaskRequest{Title: "t", Status: &status}, nil)
		if err != nil {
			t.Fatalf("createTask() error = %v", err)
		}
		if resp.Status == nil || *resp.Status != "completed" {
			t.Errorf("status = %v, want completed", resp.Status)
		}
	})
}

func TestService_GetTask(t *testing.T) {
	m := newTestModule(t, "")

	created, err := m.createTask(context.Background(), CreateTaskRequest{Title: "lookup me"}, nil)
	if err != nil {
		t.Fatalf("createTask() error = %v", err)
	}

	t.Run("existing task", func(t *testing.T) {
		resp, err := m.getTask(context.Background(), GetTaskRequest{TaskID: created.ID}, nil)
		if err != nil {
			t.Fatalf("getTask() error = %v", err)
		}
		if resp.ID != created.ID || resp.Title != "lookup me" {
			t.Errorf("got %+v, want the created task", resp)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := m.getTask(context.Background(), GetTaskRequest{TaskID: 999}, nil)
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestService_UpdateTask(t *testing.T) {
	m := newTestModule(t, "")

	status := "pending"
	created, err := m.createTask(context.Background(), CreateTaskRequest{Title: "original", Status: &status}, nil)
	if err != nil {
		t.Fatalf("createTask() error = %v", err)
	}

	t.Run("partial update leaves omitted fields alone", func(t *testing.T) {
		title := "X"
		resp, err := m.updateTask(context.Background(), UpdateTaskRequest{TaskID: created.ID, Title: &title}, nil)
		if err != nil {
			t.Fatalf("updateTask() error = %v", err)
		}
		if resp.Title != "X" {
			t.Errorf("title = %q, want %q", resp.Title, "X")
		}
		if resp.Status == nil || *resp.Status != "pending" {
			t.Errorf("status = %v, want pending (unchanged)", resp.Status)
		}
		if !resp.UpdatedAt.After(created.UpdatedAt) {
			t.Errorf("updated_at not refreshed: %v <= %v", resp.UpdatedAt, created.UpdatedAt)
		}
	})

	t.Run("status update keeps title", func(t *testing.T) {
		newStatus := "completed"
		resp, err := m.updateTask(context.Background(), UpdateTaskRequest{TaskID: created.ID, Status: &newStatus}, nil)
		if err != nil {
			t.Fatalf("updateTask() error = %v", err)
		}
		if resp.Title != "X" {
			t.Errorf("title = %q, want %q (unchanged)", resp.Title, "X")
		}
		if resp.Status == nil || *resp.Status != "completed" {
			t.Errorf("status = %v, want completed", resp.Status)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		title := "nope"
		_, err := m.updateTask(context.Background(), UpdateTaskRequest{TaskID: 999, Title: &title}, nil)
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestService_DeleteTask(t *testing.T) {
	m := newTestModule(t, "")

	created, err := m.createTask(context.Background(), CreateTaskRequest{Title: "doomed"}, nil)
	if err != nil {
		t.Fatalf("createTask() error = %v", err)
	}

	resp, err := m.deleteTask(context.Background(), DeleteTaskRequest{TaskID: created.ID}, nil)
	if err != nil {
		t.Fatalf("deleteTask() error = %v", err)
	}
	if !resp.Deleted {
		t.Error("expected Deleted = true")
	}

	if _, err := m.getTask(context.Background(), GetTaskRequest{TaskID: created.ID}, nil); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}

	// Never a second success.
	if _, err := m.deleteTask(context.Background(), DeleteTaskRequest{TaskID: created.ID}, nil); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on repeat delete, got %v", err)
	}
}

func TestService_ListTasks(t *testing.T) {
	m := newTestModule(t, "")

	for i := 1; i <= 20; i++ {
		if _, err := m.createTask(context.Background(), CreateTaskRequest{Title: fmt.Sprintf("task %02d", i)}, nil); err != nil {
			t.Fatalf("createTask() error = %v", err)
		}
	}

	t.Run("pagination metadata", func(t *testing.T) {
		resp, err := m.listTasks(context.Background(), ListTasksRequest{
			Query: NewListQuery("", "title", "asc", "5", "1"),
		}, nil)
		if err != nil {
			t.Fatalf("listTasks() error = %v", err)
		}
		if len(resp.Tasks) != 5 {
			t.Errorf("expected 5 rows, got %d", len(resp.Tasks))
		}
		if resp.Total != 20 {
			t.Errorf("total = %d, want 20", resp.Total)
		}
		if resp.CurrentPage != 1 || resp.LastPage != 4 || resp.PerPage != 5 {
			t.Errorf("meta = page %d / last %d / per %d, want 1 / 4 / 5", resp.CurrentPage, resp.LastPage, resp.PerPage)
		}
	})

	t.Run("hand-built query is sanitized", func(t *testing.T) {
		resp, err := m.listTasks(context.Background(), ListTasksRequest{
			Query: ListQuery{SortBy: "sqlite_master", SortOrder: "up", PerPage: -5, Page: -1},
		}, nil)
		if err != nil {
			t.Fatalf("listTasks() error = %v", err)
		}
		if resp.PerPage != DefaultPerPage || resp.CurrentPage != 1 {
			t.Errorf("meta = per %d / page %d, want defaults", resp.PerPage, resp.CurrentPage)
		}
		if len(resp.Tasks) != DefaultPerPage {
			t.Errorf("expected %d rows, got %d", DefaultPerPage, len(resp.Tasks))
		}
	})
}
