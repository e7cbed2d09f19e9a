package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable("company source unavailable", cause)

	assert.Equal(t, TypeUnavailable, TypeOf(err))
	assert.True(t, Is(err, TypeUnavailable))
	assert.ErrorIs(t, err, cause)
	assert.NotEmpty(t, err.StackTrace())

	wrapped := fmt.Errorf("list companies: %w", err)
	assert.Equal(t, TypeUnavailable, TypeOf(wrapped))
	assert.Equal(t, "company source unavailable", MessageOf(wrapped))

	assert.Equal(t, TypeInternal, TypeOf(errors.New("plain")))
	assert.False(t, Is(nil, TypeInternal))
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: company not found", NotFound("company not found", nil).Error())
	assert.Equal(t, "INVALID_INPUT: bad limit: boom", InvalidInput("bad limit", errors.New("boom")).Error())
}
