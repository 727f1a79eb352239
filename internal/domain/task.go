package domain

import "unicode/utf8"

// MaxTaskDescriptionLen is the longest description the tasks table accepts,
// in characters. It mirrors the VARCHAR(255) column constraint, which also
// counts characters rather than bytes.
const MaxTaskDescriptionLen = 255

// Task represents a single tracked task. The ID is assigned by the
// database on insert and is never reused, even after deletion.
type Task struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// NewTask creates a Task with the given description and no ID yet.
// Returns an error if validation fails.
func NewTask(description string) (*Task, error) {
	task := &Task{
		Description: description,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the Task invariants: a non-empty description no longer
// than MaxTaskDescriptionLen.
func (t *Task) Validate() error {
	if t.Description == "" {
		return ErrEmptyTaskDescription
	}

	if utf8.RuneCountInString(t.Description) > MaxTaskDescriptionLen {
		return ErrTaskDescriptionTooLong
	}

	return nil
}
