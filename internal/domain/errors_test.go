package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "is required", nil)
	assert.Equal(t, "title is required", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))

	idErr := NewValidationError("id", "has invalid format", ErrInvalidID)
	assert.True(t, errors.Is(idErr, ErrInvalidID))
	assert.True(t, errors.Is(idErr, ErrValidation))

	bare := NewValidationError("", "Validation error", nil)
	assert.Equal(t, "Validation error", bare.Error())
}
