package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrEmptyTaskDescription is returned when a task has no description.
	ErrEmptyTaskDescription = errors.New("task description cannot be empty")

	// ErrTaskDescriptionTooLong is returned when a task description exceeds
	// the column limit.
	ErrTaskDescriptionTooLong = errors.New("task description exceeds 255 characters")
)
