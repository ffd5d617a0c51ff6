package middleware

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationMessage(t *testing.T) {
	type payload struct {
		Status string `json:"status" validate:"required,oneof=pending confirmed fulfilled cancelled"`
		Page   int    `json:"page" validate:"omitempty,min=1"`
	}

	v := validator.New()

	t.Run("flattens field errors", func(t *testing.T) {
		err := v.Struct(payload{Status: "shipped", Page: -1})
		require.Error(t, err)

		msg := ValidationMessage(err)
		assert.Contains(t, msg, "must be one of: pending confirmed fulfilled cancelled")
		assert.Contains(t, msg, "must be at least 1")
	})

	t.Run("required field", func(t *testing.T) {
		err := v.Struct(payload{Page: 1})
		require.Error(t, err)
		assert.Contains(t, ValidationMessage(err), "is required")
	})

	t.Run("non-validation error", func(t *testing.T) {
		assert.Equal(t, "malformed request body", ValidationMessage(errors.New("unexpected EOF")))
	})
}
