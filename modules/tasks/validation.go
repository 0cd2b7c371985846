package tasks

import (
	"fmt"
	"strings"

	domain "github.com/example/task-manager/domain/task"
)

// FieldError reports a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates per-field input errors. It is returned by the
// task service before any store interaction happens.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ValidateCreate checks a create request and returns the field errors found.
func ValidateCreate(req *CreateTaskRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	}
	if req.DueDate == "" {
		errs = append(errs, FieldError{Field: "dueDate", Message: "Due date is required"})
	} else if _, err := domain.ParseDueDate(req.DueDate); err != nil {
		errs = append(errs, FieldError{Field: "dueDate", Message: "Valid due date is required"})
	}
	if req.Priority != "" && !domain.ValidPriority(req.Priority) {
		errs = append(errs, FieldError{Field: "priority", Message: "Invalid priority"})
	}

	return errs
}

// ValidateUpdate checks a partial update request. Only the fields present in
// the request are validated; the owner field is never part of the input.
func ValidateUpdate(req *UpdateTaskRequest) []FieldError {
	var errs []FieldError

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title cannot be empty"})
	}
	if req.DueDate != nil {
		if _, err := domain.ParseDueDate(*req.DueDate); err != nil {
			errs = append(errs, FieldError{Field: "dueDate", Message: "Valid due date is required"})
		}
	}
	if req.Priority != nil && !domain.ValidPriority(*req.Priority) {
		errs = append(errs, FieldError{Field: "priority", Message: "Invalid priority"})
	}
	if req.Status != nil && !domain.ValidStatus(*req.Status) {
		errs = append(errs, FieldError{Field: "status", Message: "Invalid status"})
	}

	return errs
}

// ValidateListQuery checks list parameters. Zero values mean the parameter
// was absent and the corresponding default or no-filter applies.
func ValidateListQuery(q *ListQuery) []FieldError {
	var errs []FieldError

	if q.Page < 0 {
		errs = append(errs, FieldError{Field: "page", Message: "Page must be a positive integer"})
	}
	if q.Limit < 0 {
		errs = append(errs, FieldError{Field: "limit", Message: "Limit must be a positive integer"})
	}
	if q.Priority != "" && !domain.ValidPriority(q.Priority) {
		errs = append(errs, FieldError{Field: "priority", Message: "Invalid priority"})
	}
	if q.Status != "" && !domain.ValidStatus(q.Status) {
		errs = append(errs, FieldError{Field: "status", Message: "Invalid status"})
	}
	if q.Sort != "" {
		switch q.Sort {
		case "dueDate", "-dueDate", "priority", "-priority":
		default:
			errs = append(errs, FieldError{Field: "sort", Message: "Invalid sort"})
		}
	}

	return errs
}
