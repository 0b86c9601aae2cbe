package utils

import (
	"errors"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/dto/responses"
	"glamslot-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildSuccessResponseWithCount(w http.ResponseWriter, code int, message string, count int, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Count:   &count,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	kind := constvars.ErrKindInternal
	clientMessage := constvars.ErrClientSomethingWrongWithApplication
	var messages []string

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		kind = customErr.Kind
		clientMessage = customErr.ClientMessage
		messages = customErr.Messages
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String(constvars.LoggingErrorTypeKey, customErr.Kind),
				zap.Any("location", location),
			)
		}
	} else if err != nil {
		log.Error(err.Error(), zap.String(constvars.LoggingErrorTypeKey, kind))
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		Kind:          kind,
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
		Messages:      messages,
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil && appEnvironment != "production" {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	json.NewEncoder(w).Encode(response)
}
