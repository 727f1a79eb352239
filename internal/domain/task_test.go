package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     error
	}{
		{
			name:        "valid_description",
			description: "Buy milk",
			wantErr:     nil,
		},
		{
			name:        "empty_description",
			description: "",
			wantErr:     ErrEmptyTaskDescription,
		},
		{
			name:        "description_at_limit",
			description: strings.Repeat("a", MaxTaskDescriptionLen),
			wantErr:     nil,
		},
		{
			name:        "description_over_limit",
			description: strings.Repeat("a", MaxTaskDescriptionLen+1),
			wantErr:     ErrTaskDescriptionTooLong,
		},
		{
			// 255 characters but well over 255 bytes; the limit counts
			// characters, like the VARCHAR(255) column it mirrors.
			name:        "multibyte_description_at_limit",
			description: strings.Repeat("é", MaxTaskDescriptionLen),
			wantErr:     nil,
		},
		{
			name:        "multibyte_description_over_limit",
			description: strings.Repeat("é", MaxTaskDescriptionLen+1),
			wantErr:     ErrTaskDescriptionTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.description)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, task)
			assert.Equal(t, tt.description, task.Description)
			assert.Zero(t, task.ID, "ID is assigned by the store, not the constructor")
		})
	}
}

func TestTaskValidate(t *testing.T) {
	task := &Task{ID: 7, Description: "Walk the dog"}
	require.NoError(t, task.Validate())

	task.Description = ""
	assert.ErrorIs(t, task.Validate(), ErrEmptyTaskDescription)
}
