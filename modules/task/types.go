package task

import (
	"context"
	"time"
)

// TaskData is the wire representation of a task used by the request-reply
// services. Nullable columns stay pointers so null survives the JSON hop.
type TaskData struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateTaskRequest is the request for creating a task. The payload is
// expected to be validated (ValidateCreate) before it reaches the service.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// GetTaskRequest is the request for fetching a single task.
type GetTaskRequest struct {
	TaskID uint `json:"task_id"`
}

// UpdateTaskRequest is the request for a partial update. Nil fields are left
// untouched; only supplied fields change.
type UpdateTaskRequest struct {
	TaskID      uint       `json:"task_id"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID uint `json:"task_id"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

// ListTasksRequest carries the normalized list query.
type ListTasksRequest struct {
	Query ListQuery `json:"query"`
}

// ListTasksResponse is an ordered page of tasks plus pagination metadata.
type ListTasksResponse struct {
	Tasks       []TaskData `json:"tasks"`
	Total       int64      `json:"total"`
	CurrentPage int        `json:"current_page"`
	LastPage    int        `json:"last_page"`
	PerPage     int        `json:"per_page"`
}

// TaskPort is the contract driving adapters (the HTTP API) use to reach the
// task domain.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskData, error)
	GetTask(ctx context.Context, taskID uint) (*TaskData, error)
	ListTasks(ctx context.Context, q ListQuery) (*ListTasksResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskData, error)
	DeleteTask(ctx context.Context, taskID uint) error
}
