package task

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter implements TaskPort over the mono service container.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a typed adapter for the task services. container is
// the ServiceContainer received via SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// CreateTask creates a new task via the task.create service.
func (a *taskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskData, error) {
	var resp TaskData
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"create",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("create service call failed: %w", err)
	}
	return &resp, nil
}

// GetTask retrieves a task by ID via the task.get service.
func (a *taskAdapter) GetTask(ctx context.Context, taskID uint) (*TaskData, error) {
	req := GetTaskRequest{TaskID: taskID}
	var resp TaskData
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, mapServiceError(err)
	}
	return &resp, nil
}

// ListTasks fetches a page of tasks via the task.list service.
func (a *taskAdapter) ListTasks(ctx context.Context, q ListQuery) (*ListTasksResponse, error) {
	req := ListTasksRequest{Query: q}
	var resp ListTasksResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("list service call failed: %w", err)
	}
	return &resp, nil
}

// UpdateTask applies a partial update via the task.update service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskData, error) {
	var resp TaskData
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"update",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, mapServiceError(err)
	}
	return &resp, nil
}

// DeleteTask removes a task via the task.delete service.
func (a *taskAdapter) DeleteTask(ctx context.Context, taskID uint) error {
	req := DeleteTaskRequest{TaskID: taskID}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"delete",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return mapServiceError(err)
	}
	return nil
}

// mapServiceError converts service errors back to sentinel errors by
// checking the message content. Error types do not survive the NATS hop.
func mapServiceError(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(strings.ToLower(err.Error()), "task not found") {
		return ErrTaskNotFound
	}
	return err
}
