package api

// TaskResource is the stable wire representation of a single task. Timestamps
// are RFC3339 UTC strings; nullable fields serialize as null.
type TaskResource struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// PageLinks are the pagination navigation links.
type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// PageMeta describes the position of a page within the whole result set.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

// TaskPage is the response payload for the list operation.
type TaskPage struct {
	Data  []TaskResource `json:"data"`
	Links PageLinks      `json:"links"`
	Meta  PageMeta       `json:"meta"`
}

// TaskEnvelope wraps a single task with a human-readable message.
type TaskEnvelope struct {
	Message string       `json:"message"`
	Data    TaskResource `json:"data"`
}

// DataEnvelope wraps a single task without a message (show operation).
type DataEnvelope struct {
	Data TaskResource `json:"data"`
}

// MessageResponse carries only a message (delete operation).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 422 payload with field-level messages.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// HealthResponse is the HTTP response for the health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}
