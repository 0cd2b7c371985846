package task

import "time"

// Priority represents how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Status represents the completion state of a task.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// ValidPriority reports whether p is one of the allowed priority values.
func ValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the allowed status values.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusCompleted:
		return true
	}
	return false
}

// DueDateLayout is the calendar-date form accepted for due dates.
const DueDateLayout = "2006-01-02"

// ParseDueDate parses a YYYY-MM-DD calendar date into a midnight-UTC time.
func ParseDueDate(s string) (time.Time, error) {
	return time.Parse(DueDateLayout, s)
}

// Task is the core domain entity representing a todo item.
// UserID is set once at creation from the authenticated caller and is never
// accepted from request input.
type Task struct {
	ID          string    `gorm:"primaryKey;type:text" json:"id"`
	Title       string    `gorm:"not null;type:text" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	DueDate     time.Time `gorm:"not null;index" json:"dueDate"`
	Priority    Priority  `gorm:"not null;default:Low;type:text" json:"priority"`
	Status      Status    `gorm:"not null;default:Pending;type:text" json:"status"`
	UserID      string    `gorm:"not null;index;type:text" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}
