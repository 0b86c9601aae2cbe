package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorTypeKey      = "error_type"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"

	LoggingSlotIDKey            = "slot_id"
	LoggingSlotDateKey          = "slot_date"
	LoggingSlotTimeKey          = "slot_time"
	LoggingAppointmentIDKey     = "appointment_id"
	LoggingAppointmentStatusKey = "appointment_status"
	LoggingAdminIDKey           = "admin_id"
	LoggingCreatedCountKey      = "created_count"
	LoggingFailedCountKey       = "failed_count"
	LoggingRoutingKey           = "routing_key"
	LoggingObjectNameKey        = "object_name"

	LoggingRedisKey              = "redis_key"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
