package exceptions

import (
	"errors"
	"glamslot-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func formatValidationError(fieldError validator.FieldError) string {
	tag := fieldError.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if constvars.TagsWithStandaloneMessage[tag] {
		return customMessage
	}
	if !ok {
		customMessage = "is invalid"
	}

	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldError.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldError.Param(), 1)
		}
	}
	return strings.ToLower(fieldError.Field()) + " " + customMessage
}

// CollectValidationMessages returns one message per failed field.
func CollectValidationMessages(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, formatValidationError(fieldError))
	}
	return messages
}

func FormatAllValidationErrors(err error) string {
	messages := CollectValidationMessages(err)
	if len(messages) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}
	return strings.Join(messages, ", ")
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return formatValidationError(validationErrors[0])
	}
	return constvars.ErrDevInvalidInput
}
