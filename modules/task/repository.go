package task

import (
	"errors"
	"fmt"

	domain "github.com/example/tasks-api/domain/task"
	"gorm.io/gorm"
)

// Repository provides access to task storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new task. The database assigns the ID and gorm fills the
// created_at/updated_at timestamps.
func (r *Repository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *Repository) FindByID(id uint) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// List returns the page of tasks described by q plus the total row count
// across all pages (honoring the status filter, ignoring the page window).
// Rows with equal sort-key values are tie-broken by id ascending so
// pagination stays stable.
func (r *Repository) List(q ListQuery) ([]domain.Task, int64, error) {
	// Fresh chains per statement; gorm chains are not safe to reuse after a
	// finisher like Count.
	filtered := func() *gorm.DB {
		query := r.db.Model(&domain.Task{})
		if q.Status != "" {
			query = query.Where("status = ?", q.Status)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	// q.SortBy and q.SortOrder were whitelisted by NewListQuery, so they are
	// safe to interpolate into the ORDER BY clause.
	order := fmt.Sprintf("%s %s, id asc", q.SortBy, q.SortOrder)

	var tasks []domain.Task
	err := filtered().
		Order(order).
		Limit(q.PerPage).
		Offset(q.Offset()).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// Save persists the full state of an existing task and refreshes updated_at.
func (r *Repository) Save(task *domain.Task) error {
	if err := r.db.Save(task).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes a task by ID. The row is gone for good: the entity carries
// no soft-delete column.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&domain.Task{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
