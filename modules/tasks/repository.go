package tasks

import (
	"errors"
	"fmt"
	"strings"

	domain "github.com/example/task-manager/domain/task"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no task with the given id is owned by the
// caller. A task owned by someone else is indistinguishable from a task that
// does not exist.
var ErrNotFound = errors.New("task not found")

// TaskRepository handles task persistence using GORM. Every query starts
// from the mandatory owner predicate.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create saves a new task.
func (r *TaskRepository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task scoped by (id, owner).
func (r *TaskRepository) FindByID(ownerID, taskID string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.First(&task, "id = ? AND user_id = ?", taskID, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// List returns the owner's tasks matching the query, plus the total count of
// matches ignoring pagination. The query is built conjunctively: the owner
// predicate is always present, filters only when supplied.
func (r *TaskRepository) List(ownerID string, q ListQuery) ([]*domain.Task, int64, error) {
	scope := r.db.Model(&domain.Task{}).Where("user_id = ?", ownerID)
	if q.Priority != "" {
		scope = scope.Where("priority = ?", q.Priority)
	}
	if q.Status != "" {
		scope = scope.Where("status = ?", q.Status)
	}
	if q.Search != "" {
		scope = scope.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}

	var total int64
	if err := scope.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	if order := sortClause(q.Sort); order != "" {
		scope = scope.Order(order)
	}

	var list []*domain.Task
	err := scope.Offset((q.Page - 1) * q.Limit).Limit(q.Limit).Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return list, total, nil
}

// Update applies the given column updates in a single conditional statement
// matched on (id, owner), then returns the full updated record.
func (r *TaskRepository) Update(ownerID, taskID string, updates map[string]any) (*domain.Task, error) {
	result := r.db.Model(&domain.Task{}).
		Where("id = ? AND user_id = ?", taskID, ownerID).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ownerID, taskID)
}

// Delete removes a task in a single conditional statement matched on
// (id, owner). Removal is permanent.
func (r *TaskRepository) Delete(ownerID, taskID string) error {
	result := r.db.Delete(&domain.Task{}, "id = ? AND user_id = ?", taskID, ownerID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// sortClause maps the API sort parameter onto an ORDER BY clause. An empty
// result means store-default ordering.
func sortClause(sort string) string {
	switch sort {
	case "dueDate":
		return "due_date ASC"
	case "-dueDate":
		return "due_date DESC"
	case "priority":
		return "priority ASC"
	case "-priority":
		return "priority DESC"
	}
	return ""
}
