package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnavailableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "connection_error",
			err:  fmt.Errorf("%w: dial tcp: connection refused", ErrConnection),
			want: true,
		},
		{
			name: "statement_error",
			err:  fmt.Errorf("%w: relation does not exist", ErrStatement),
			want: true,
		},
		{
			name: "unrelated_error",
			err:  errors.New("something else"),
			want: false,
		},
		{
			name: "nil_error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnavailableError(tt.err))
		})
	}
}
