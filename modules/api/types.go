package api

import "github.com/example/task-manager/modules/tasks"

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries an issued bearer token, with an optional
// human-readable message on registration.
type TokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// CreateTaskBody is the client body for creating a task. The owner is taken
// from the authenticated identity, never from the body.
type CreateTaskBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
}

// UpdateTaskBody is the client body for a partial update. Absent fields stay
// unchanged. An owner field in the body is ignored.
type UpdateTaskBody struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// TaskEnvelope wraps a task with a confirmation message.
type TaskEnvelope struct {
	Message string             `json:"message"`
	Task    tasks.TaskResponse `json:"task"`
}

// MessageResponse is a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents a single-message error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ValidationErrorResponse reports per-field input errors.
type ValidationErrorResponse struct {
	Errors []tasks.FieldError `json:"errors"`
}
