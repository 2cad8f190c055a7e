package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Field length limits enforced client-side before any network call
const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 150
)

// Due date formats accepted from the backend
const (
	DueDateFormatSlash = "02/01/2006" // DD/MM/YYYY
	DueDateFormatISO   = "2006-01-02" // YYYY-MM-DD
)

// Task represents a single task owned by the authenticated user.
// The ID is assigned by the backend and is zero for unsaved tasks.
type Task struct {
	ID          int        `json:"idTarea,omitempty"`
	Title       string     `json:"titulo"`
	Description string     `json:"descripcion,omitempty"`
	DueDate     string     `json:"fechafin"`
	Status      TaskStatus `json:"estado"`
}

// ParseDueDate parses the task's due date string. It accepts the two wire
// formats (DD/MM/YYYY and YYYY-MM-DD); anything else reports ok=false and the
// task is treated as having no date.
func (t *Task) ParseDueDate() (time.Time, bool) {
	return ParseDueDate(t.DueDate)
}

// ParseDueDate parses a due date string in either accepted format.
func ParseDueDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "/") {
		if d, err := time.Parse(DueDateFormatSlash, s); err == nil {
			return d, true
		}
		return time.Time{}, false
	}

	if d, err := time.Parse(DueDateFormatISO, s); err == nil {
		return d, true
	}
	return time.Time{}, false
}

// Validate checks the client-side constraints before a create or update call.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(t.Title) > TitleMaxLen {
		return errors.New("title must be 100 characters or fewer")
	}
	if utf8.RuneCountInString(t.Description) > DescriptionMaxLen {
		return errors.New("description must be 150 characters or fewer")
	}
	if strings.TrimSpace(t.DueDate) == "" {
		return errors.New("due date is required")
	}
	if !t.Status.IsValid() {
		return errors.New("status must be INICIADA, PENDIENTE or COMPLETADA")
	}
	return nil
}

// DisplayTitle returns the title trimmed for list rendering, falling back to
// the description when the title is blank.
func (t *Task) DisplayTitle() string {
	if title := strings.TrimSpace(t.Title); title != "" {
		return title
	}
	return strings.TrimSpace(t.Description)
}
