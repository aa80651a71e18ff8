package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	t.Run("ErrorStringIncludesDetails", func(t *testing.T) {
		err := NewValidationError("age out of range")
		assert.Contains(t, err.Error(), "VALIDATION_FAILED")
		assert.Contains(t, err.Error(), "age out of range")
	})

	t.Run("UnwrapReturnsCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewDatabaseError("list recipes", cause)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("StatusCodes", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, NewBadRequestError("bad").StatusCode())
		assert.Equal(t, http.StatusBadRequest, NewValidationError("bad").StatusCode())
		assert.Equal(t, http.StatusNotFound, NewNotFoundError("recipe").StatusCode())
		assert.Equal(t, http.StatusInternalServerError, NewInternalError("boom").StatusCode())
		assert.Equal(t, http.StatusInternalServerError, NewDatabaseError("query", nil).StatusCode())
	})

	t.Run("WithMetadata", func(t *testing.T) {
		err := NewBadRequestError("bad").WithMetadata("field", "age")
		assert.Equal(t, "age", err.Metadata["field"])
	})
}

func TestWrap(t *testing.T) {
	t.Run("PlainErrorBecomesInternal", func(t *testing.T) {
		wrapped := Wrap(errors.New("boom"), "loading catalog")
		assert.Equal(t, CodeInternal, wrapped.Code)
		assert.Equal(t, "loading catalog", wrapped.Message)
	})

	t.Run("AppErrorKeepsCode", func(t *testing.T) {
		inner := NewNotFoundError("recipe")
		wrapped := Wrap(inner, "loading catalog")
		assert.Equal(t, CodeNotFound, wrapped.Code)
		assert.ErrorIs(t, wrapped, inner)
	})
}

func TestIsCode(t *testing.T) {
	err := NewValidationError("bad input")
	require.True(t, IsCode(err, CodeValidationFailed))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(errors.New("plain"), CodeValidationFailed))
}
