package exceptions

import (
	"fmt"
	"glamslot-service/internal/pkg/constvars"
)

var (
	// Request errors
	ErrInputValidation = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.ErrKindValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
		customErr.Messages = CollectValidationMessages(err)
		return customErr
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindValidation, constvars.StatusBadRequest, constvars.CustomValidationErrorMessages["slot_date"], constvars.ErrDevCannotParseDate)
	}
	ErrDateRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindValidation, constvars.StatusBadRequest, constvars.ErrClientDateRequired, constvars.ErrDevInvalidInput)
	}
	ErrNoSlotsProvided = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindValidation, constvars.StatusBadRequest, constvars.ErrClientNoSlotsProvided, constvars.ErrDevInvalidInput)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindTimeout, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPanicRecovered)
	}
	ErrRouteNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindNotFound, constvars.StatusNotFound, constvars.ErrClientRouteNotFound, constvars.ErrDevRouteNotFound)
	}
	ErrRateLimitExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindValidation, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevRateLimitExceeded)
	}

	// Auth errors
	ErrEmailAndPasswordRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindValidation, constvars.StatusBadRequest, constvars.ErrClientEmailAndPasswordRequired, constvars.ErrDevInvalidInput)
	}
	ErrInvalidCredentials = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInvalidCredentials, constvars.StatusUnauthorized, constvars.ErrClientInvalidCredentials, constvars.ErrDevInvalidCredentials)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindAuthRequired, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindAuthRequired, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrInvalidSession = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindAuthRequired, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}
	ErrMissingSessionData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindAuthRequired, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevMissingSessionData)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrAdminAlreadyExists = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindConflict, constvars.StatusBadRequest, constvars.ErrClientAdminAlreadyExists, constvars.ErrDevAdminAlreadyExists)
	}

	// Slot errors
	ErrSlotNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindSlotNotFound, constvars.StatusBadRequest, constvars.ErrClientSlotNotFound, constvars.ErrDevSlotNotFound)
	}
	ErrSlotConflict = func(err error, devMessage string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindSlotConflict, constvars.StatusConflict, constvars.ErrClientSlotAlreadyBooked, devMessage)
	}
	ErrSlotNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindNotFound, constvars.StatusNotFound, constvars.ErrClientSlotNotExists, constvars.ErrDevSlotDoesNotExist)
	}
	ErrSlotIsBooked = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindConflict, constvars.StatusBadRequest, constvars.ErrClientCannotDeleteBookedSlot, constvars.ErrDevSlotIsBooked)
	}
	ErrSlotAlreadyExists = func(err error, date, time string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindConflict, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientSlotAlreadyExistsFormat, date, time), constvars.ErrDevSlotAlreadyExists)
	}

	// Appointment errors
	ErrAppointmentNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindNotFound, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevAppointmentDoesNotExist)
	}
	ErrAppointmentStatusTransition = func(err error, from, to string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindConflict, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientInvalidStatusTransition, from, to), constvars.ErrDevAppointmentStatusTransition)
	}
	ErrAppointmentModified = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindConflict, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevAppointmentModified)
	}

	// Store errors
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBInsertDocument)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFindDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBDeleteDocument)
	}
	ErrMongoDBCountDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBCountDocument)
	}
	ErrMongoDBAggregateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBAggregateDocument)
	}
	ErrMongoDBDecodeDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBDecodeDocument)
	}
	ErrMongoDBCreateIndex = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBCreateIndex)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}
	ErrRabbitMQPublishMessage = func(err error, exchange string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, exchange))
	}
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName))
	}
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrKindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioPresignObject, bucketName))
	}
)
