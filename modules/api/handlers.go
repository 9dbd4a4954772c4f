package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/example/tasks-api/modules/task"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains the HTTP handlers for the task resource.
type Handlers struct {
	taskPort task.TaskPort
	tasksURL string
}

// NewHandlers creates a new Handlers instance. tasksURL is the absolute URL
// of the collection, used for pagination links.
func NewHandlers(taskPort task.TaskPort, tasksURL string) *Handlers {
	return &Handlers{
		taskPort: taskPort,
		tasksURL: tasksURL,
	}
}

// ListTasks handles GET /api/tasks. Bad query parameters never error; they
// fail closed to the defaults inside NewListQuery.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	q := task.NewListQuery(
		c.Query("status"),
		c.Query("sort_by"),
		c.Query("sort_order"),
		c.Query("per_page"),
		c.Query("page"),
	)

	resp, err := h.taskPort.ListTasks(c.UserContext(), q)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(newTaskPage(h.tasksURL, resp))
}

// GetTask handles GET /api/tasks/:id.
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	taskID, ok := parseTaskID(c)
	if !ok {
		return notFound(c)
	}

	resp, err := h.taskPort.GetTask(c.UserContext(), taskID)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return notFound(c)
		}
		return serverError(c)
	}

	return c.JSON(DataEnvelope{Data: toTaskResource(resp)})
}

// CreateTask handles POST /api/tasks. Validation runs before any mutation is
// attempted; a 422 response means nothing was written.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var in task.CreateInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := task.ValidateCreate(in); err != nil {
		return validationFailed(c, err)
	}

	req := task.CreateTaskRequest{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		DueDate:     parseDueDate(in.DueDate),
	}

	resp, err := h.taskPort.CreateTask(c.UserContext(), &req)
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(TaskEnvelope{
		Message: "Task created successfully",
		Data:    toTaskResource(resp),
	})
}

// UpdateTask handles PUT /api/tasks/:id with partial patch semantics: only
// keys present in the body are applied.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	taskID, ok := parseTaskID(c)
	if !ok {
		return notFound(c)
	}

	var in task.UpdateInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := task.ValidateUpdate(in); err != nil {
		return validationFailed(c, err)
	}

	req := task.UpdateTaskRequest{
		TaskID:      taskID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		DueDate:     parseDueDate(in.DueDate),
	}

	resp, err := h.taskPort.UpdateTask(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return notFound(c)
		}
		return serverError(c)
	}

	return c.JSON(TaskEnvelope{
		Message: "Task updated successfully",
		Data:    toTaskResource(resp),
	})
}

// DeleteTask handles DELETE /api/tasks/:id. The delete is hard; repeating it
// yields 404, never a second success.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	taskID, ok := parseTaskID(c)
	if !ok {
		return notFound(c)
	}

	if err := h.taskPort.DeleteTask(c.UserContext(), taskID); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return notFound(c)
		}
		return serverError(c)
	}

	return c.JSON(MessageResponse{Message: "Task deleted successfully"})
}

// parseTaskID reads the :id path parameter. A non-numeric identifier cannot
// resolve to a task, so callers treat it as not found.
func parseTaskID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseDueDate converts a validated due_date string into a UTC timestamp.
func parseDueDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	// Already validated against DueDateLayout; a parse error cannot happen.
	t, err := time.ParseInLocation(task.DueDateLayout, *s, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
		Error:   "not_found",
		Message: "Task not found",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_request",
		Message: message,
	})
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "server_error",
		Message: "Internal Server Error",
	})
}

// validationFailed renders a 422 with the field-level messages. A non
// ValidationError here means the validator itself failed, which is a server
// fault.
func validationFailed(c *fiber.Ctx, err error) error {
	var ve *task.ValidationError
	if !errors.As(err, &ve) {
		return serverError(c)
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ValidationErrorResponse{
		Message: "The given data was invalid.",
		Errors:  ve.Fields,
	})
}
