package tasks

import (
	"context"
	"strings"
	"time"

	domain "github.com/example/task-manager/domain/task"
	"github.com/google/uuid"
)

// TaskService implements owner-scoped task CRUD. Every operation takes the
// authenticated owner id as an explicit argument.
type TaskService struct {
	repo *TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo *TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create validates the input and persists a new task owned by the caller.
// New tasks always start Pending.
func (s *TaskService) Create(_ context.Context, req *CreateTaskRequest) (*domain.Task, error) {
	if errs := ValidateCreate(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	dueDate, err := domain.ParseDueDate(req.DueDate)
	if err != nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "dueDate", Message: "Valid due date is required"}}}
	}

	priority := domain.PriorityLow
	if req.Priority != "" {
		priority = domain.Priority(req.Priority)
	}

	now := time.Now()
	task := &domain.Task{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      domain.StatusPending,
		UserID:      req.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

// Get fetches a single task scoped to the owner.
func (s *TaskService) Get(_ context.Context, ownerID, taskID string) (*domain.Task, error) {
	return s.repo.FindByID(ownerID, taskID)
}

// List returns the owner's tasks matching the query plus pagination
// metadata.
func (s *TaskService) List(_ context.Context, ownerID string, q ListQuery) ([]*domain.Task, int64, int, int, error) {
	if errs := ValidateListQuery(&q); len(errs) > 0 {
		return nil, 0, 0, 0, &ValidationError{Fields: errs}
	}
	q.normalize()

	list, total, err := s.repo.List(ownerID, q)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	return list, total, q.Page, q.Limit, nil
}

// Update applies the supplied subset of fields through a single conditional
// store operation. The owner field is never part of the update.
func (s *TaskService) Update(_ context.Context, req *UpdateTaskRequest) (*domain.Task, error) {
	if errs := ValidateUpdate(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DueDate != nil {
		dueDate, err := domain.ParseDueDate(*req.DueDate)
		if err != nil {
			return nil, &ValidationError{Fields: []FieldError{{Field: "dueDate", Message: "Valid due date is required"}}}
		}
		updates["due_date"] = dueDate
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		// Nothing to change; still an owner-scoped existence check.
		return s.repo.FindByID(req.OwnerID, req.TaskID)
	}
	updates["updated_at"] = time.Now()

	return s.repo.Update(req.OwnerID, req.TaskID, updates)
}

// Delete permanently removes a task scoped to the owner.
func (s *TaskService) Delete(_ context.Context, ownerID, taskID string) error {
	return s.repo.Delete(ownerID, taskID)
}
