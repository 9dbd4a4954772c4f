package task

import "time"

// Status represents the workflow state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the accepted status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task is the core domain entity. Rows are hard-deleted, so there is no
// gorm.DeletedAt column.
type Task struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description *string    `gorm:"size:1000" json:"description"`
	Status      *Status    `gorm:"size:20;index" json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}
