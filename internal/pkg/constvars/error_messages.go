package constvars

// Validation messages for request fields, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"oneof":        "must be one of [%s]",
	"dive":         "is invalid",
	"phone_number": "Phone number must be 10 digits",
	"slot_time":    "Time must be in HH:MM format",
	"slot_date":    "Date must be a valid date (YYYY-MM-DD)",
	"object_id":    "must be a valid id",
}

// Validation tags that carry a parameter to substitute into the message
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Validation tags whose message already names the field
var TagsWithStandaloneMessage = map[string]bool{
	"phone_number": true,
	"slot_time":    true,
	"slot_date":    true,
}

// Error kinds carried by every CustomError
const (
	ErrKindValidation         = "VALIDATION_ERROR"
	ErrKindNotFound           = "NOT_FOUND"
	ErrKindSlotNotFound       = "SLOT_NOT_FOUND"
	ErrKindSlotConflict       = "SLOT_CONFLICT"
	ErrKindConflict           = "CONFLICT"
	ErrKindAuthRequired       = "AUTH_REQUIRED"
	ErrKindInvalidCredentials = "INVALID_CREDENTIALS"
	ErrKindTimeout            = "TIMEOUT"
	ErrKindInternal           = "INTERNAL"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "Not authorized, no token"
	ErrClientNotLoggedIn                   = "Not authorized, token failed"
	ErrClientInvalidCredentials            = "Invalid credentials"
	ErrClientEmailAndPasswordRequired      = "Please provide email and password"
	ErrClientDateRequired                  = "Date is required"
	ErrClientSlotNotFound                  = "Time slot not available"
	ErrClientSlotAlreadyBooked             = "Time slot already booked"
	ErrClientSlotNotExists                 = "Time slot not found"
	ErrClientCannotDeleteBookedSlot        = "Cannot delete a booked time slot"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientInvalidStatusTransition       = "Cannot change appointment status from %s to %s"
	ErrClientNoSlotsProvided               = "Please provide at least one slot"
	ErrClientSlotAlreadyExistsFormat       = "Slot already exists for %s at %s"
	ErrClientSlotCreateFailedFormat        = "Error creating slot: %s"
	ErrClientAdminAlreadyExists            = "Admin already exists"
	ErrClientRouteNotFound                 = "Route not found"
	ErrClientTooManyRequests               = "Too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevValidationFailed            = "validation failed"
	ErrDevCannotParseJSON             = "cannot parse JSON"
	ErrDevCannotMarshalJSON           = "cannot marshal JSON"
	ErrDevCannotParseDate             = "cannot parse date"
	ErrDevURLParamIDValidationFailed  = "failed to validate url param %s"
	ErrDevMissingRequestID            = "request id missing from context"
	ErrDevMissingSessionData          = "session data missing from context"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded"
	ErrDevFailedToHashPassword        = "failed to hash password"
	ErrDevInvalidCredentials          = "invalid credentials"
	ErrDevAuthTokenMissing            = "authorization token missing"
	ErrDevAuthTokenInvalid            = "authorization token invalid"
	ErrDevAuthGenerateToken           = "failed to generate auth token"
	ErrDevAuthInvalidSession          = "session not found or expired"
	ErrDevSlotNotFound                = "no time slot matches the requested date and time"
	ErrDevSlotAlreadyBooked           = "time slot already booked"
	ErrDevSlotBookingRaceLost         = "time slot was booked by a concurrent request"
	ErrDevSlotBookingLockHeld         = "time slot booking lock held by another request"
	ErrDevSlotDoesNotExist            = "time slot does not exist"
	ErrDevSlotIsBooked                = "time slot is booked"
	ErrDevSlotAlreadyExists           = "time slot already exists"
	ErrDevAppointmentDoesNotExist     = "appointment does not exist"
	ErrDevAppointmentStatusTransition = "appointment status transition not allowed"
	ErrDevAppointmentModified         = "appointment modified concurrently"
	ErrDevAdminAlreadyExists          = "admin already exists"
	ErrDevMongoDBInsertDocument       = "failed to insert document into mongodb"
	ErrDevMongoDBFindDocument         = "failed to find document in mongodb"
	ErrDevMongoDBUpdateDocument       = "failed to update document in mongodb"
	ErrDevMongoDBDeleteDocument       = "failed to delete document in mongodb"
	ErrDevMongoDBCountDocument        = "failed to count documents in mongodb"
	ErrDevMongoDBAggregateDocument    = "failed to aggregate documents in mongodb"
	ErrDevMongoDBDecodeDocument       = "failed to decode mongodb document"
	ErrDevMongoDBCreateIndex          = "failed to create mongodb index"
	ErrDevRedisSet                    = "failed to set redis key"
	ErrDevRedisGet                    = "failed to get redis key %s"
	ErrDevRedisDelete                 = "failed to delete redis key"
	ErrDevRedisUnlock                 = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage      = "failed to publish message to rabbitmq exchange %s"
	ErrDevMinioCreateObject           = "failed to create object in minio bucket %s"
	ErrDevMinioPresignObject          = "failed to presign object in minio bucket %s"
	ErrDevPanicRecovered              = "panic recovered"
	ErrDevRateLimitExceeded           = "rate limit exceeded"
	ErrDevRouteNotFound               = "route not found"
	ErrDevUnknownError                = "unknown error"
)
