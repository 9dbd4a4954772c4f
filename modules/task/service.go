package task

import (
	"context"
	"log"
	"time"

	domain "github.com/example/tasks-api/domain/task"
	"github.com/example/tasks-api/events"
	"github.com/go-monolith/mono"
)

// createTask handles the task.create service request. Validation happens at
// the edge; this handler only applies the configured default status and
// persists.
func (m *Module) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskData, error) {
	status := req.Status
	if status == nil && m.defaultStatus != nil {
		status = m.defaultStatus
	}

	newTask := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if status != nil {
		s := domain.Status(*status)
		newTask.Status = &s
	}

	if err := m.repo.Create(newTask); err != nil {
		return TaskData{}, err
	}

	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:    newTask.ID,
			Title:     newTask.Title,
			Status:    status,
			CreatedAt: newTask.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; the create already succeeded.
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %d: %v", newTask.ID, err)
		}
	}

	return toTaskData(newTask), nil
}

// getTask handles the task.get service request.
func (m *Module) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskData, error) {
	task, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskData{}, err
	}
	return toTaskData(task), nil
}

// listTasks handles the task.list service request.
func (m *Module) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	q := req.Query.sanitized()

	tasks, total, err := m.repo.List(q)
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks:       make([]TaskData, 0, len(tasks)),
		Total:       total,
		CurrentPage: q.Page,
		LastPage:    q.LastPage(total),
		PerPage:     q.PerPage,
	}
	for i := range tasks {
		response.Tasks = append(response.Tasks, toTaskData(&tasks[i]))
	}
	return response, nil
}

// updateTask handles the task.update service request with partial patch
// semantics: nil fields keep their stored value.
func (m *Module) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskData, error) {
	task, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskData{}, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		task.Status = &s
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	task.UpdatedAt = time.Now().UTC()

	if err := m.repo.Save(task); err != nil {
		return TaskData{}, err
	}

	if m.eventBus != nil {
		event := events.TaskUpdatedEvent{
			TaskID:    task.ID,
			Title:     task.Title,
			UpdatedAt: task.UpdatedAt,
		}
		if err := events.TaskUpdatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskUpdated event for task %d: %v", task.ID, err)
		}
	}

	return toTaskData(task), nil
}

// deleteTask handles the task.delete service request. The delete is hard and
// unconditional; a repeat delete reports not found.
func (m *Module) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if err := m.repo.Delete(req.TaskID); err != nil {
		return DeleteTaskResponse{Deleted: false}, err
	}

	if m.eventBus != nil {
		event := events.TaskDeletedEvent{
			TaskID:    req.TaskID,
			DeletedAt: time.Now().UTC(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskDeleted event for task %d: %v", req.TaskID, err)
		}
	}

	return DeleteTaskResponse{Deleted: true}, nil
}

// toTaskData converts a domain Task to its wire representation.
func toTaskData(task *domain.Task) TaskData {
	data := TaskData{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.Status != nil {
		s := string(*task.Status)
		data.Status = &s
	}
	return data
}
