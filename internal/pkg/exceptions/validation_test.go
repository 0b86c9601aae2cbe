package exceptions

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type validationSample struct {
	Name   string `validate:"required"`
	Status string `validate:"oneof=pending approved cancelled"`
}

func TestFormatValidationErrors(t *testing.T) {
	validate := validator.New()

	t.Run("first error uses field name and custom message", func(t *testing.T) {
		err := validate.Struct(validationSample{Status: "pending"})
		assert.Equal(t, "name is required", FormatFirstValidationError(err))
	})

	t.Run("oneof lists allowed values", func(t *testing.T) {
		err := validate.Struct(validationSample{Name: "A", Status: "done"})
		assert.Equal(t, "status must be one of [pending, approved, cancelled]", FormatFirstValidationError(err))
	})

	t.Run("all errors are collected", func(t *testing.T) {
		err := validate.Struct(validationSample{Status: "done"})
		messages := CollectValidationMessages(err)
		assert.Len(t, messages, 2)
		assert.Equal(t, "name is required, status must be one of [pending, approved, cancelled]", FormatAllValidationErrors(err))
	})

	t.Run("non validation error", func(t *testing.T) {
		assert.Nil(t, CollectValidationMessages(errors.New("boom")))
		assert.Equal(t, "invalid input", FormatFirstValidationError(errors.New("boom")))
	})
}

func TestCustomErrorKind(t *testing.T) {
	cause := errors.New("predicate unmet")
	err := ErrSlotConflict(cause, "race lost")

	assert.True(t, IsKind(err, "SLOT_CONFLICT"))
	assert.False(t, IsKind(err, "CONFLICT"))
	assert.Equal(t, 409, err.StatusCode)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.DevMessage, "race lost: predicate unmet")
	assert.NotEmpty(t, err.Locations)

	validationErr := ErrInputValidation(validator.New().Struct(validationSample{Status: "done"}))
	assert.Equal(t, "VALIDATION_ERROR", validationErr.Kind)
	assert.Len(t, validationErr.Messages, 2)
}
