package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrElementIDRequired", ErrElementIDRequired},
		{"ErrHostNotFound", ErrHostNotFound},
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedType", ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrHostNotFound_Wrapped(t *testing.T) {
	err := fmt.Errorf("%w: %q", ErrHostNotFound, "p1")

	assert.True(t, errors.Is(err, ErrHostNotFound))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, `host element not found: "p1"`, err.Error())
}
