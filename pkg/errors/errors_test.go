package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("NilError_ReturnsNil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "ignored"))
	})

	t.Run("AppError_PassesThrough", func(t *testing.T) {
		original := NewRecipeNotFoundError("abc")
		wrapped := Wrap(original, "ignored")
		assert.Same(t, original, wrapped)
	})

	t.Run("PlainError_BecomesInternalWithCause", func(t *testing.T) {
		cause := stderrors.New("disk full")
		wrapped := Wrap(cause, "something broke")

		require.NotNil(t, wrapped)
		assert.Equal(t, CodeInternal, wrapped.Code)
		assert.Equal(t, "something broke", wrapped.Message)
		assert.True(t, stderrors.Is(wrapped, cause))
	})
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{CodeValidationFailed, http.StatusBadRequest},
		{CodeNotRecipeContent, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeInsufficientPermissions, http.StatusForbidden},
		{CodeRecipeNotFound, http.StatusNotFound},
		{CodePantryItemNotFound, http.StatusNotFound},
		{CodeDatabaseError, http.StatusInternalServerError},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := NewAppError(tt.code, "msg", "")
			assert.Equal(t, tt.want, err.StatusCode())
		})
	}
}

func TestIs(t *testing.T) {
	assert.True(t, Is(NewValidationError("bad"), CodeValidationFailed))
	assert.False(t, Is(NewValidationError("bad"), CodeRecipeNotFound))
	assert.False(t, Is(stderrors.New("plain"), CodeInternal))
}
