package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	MongoCollectionTimeSlots    = "timeslots"
	MongoCollectionAppointments = "appointments"
	MongoCollectionAdmins       = "admins"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusApproved  = "approved"
	AppointmentStatusCancelled = "cancelled"
)

const (
	RoleAdmin = "admin"
)

// DefaultSlotTimes is the hourly set provisioned by EnsureDefaultSlots.
var DefaultSlotTimes = []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}

const (
	DateLayoutYYYYMMDD = "2006-01-02"
	OneDay             = 24 * time.Hour
)

const (
	RedisSessionKeyFormat     = "session:%s"
	RedisSlotBookingKeyFormat = "lock:slot-booking:%s"
)

const (
	DefaultAdminEmail    = "admin@glamslot.com"
	DefaultAdminName     = "Admin"
	LedgerExportPrefix   = "appointments"
	LedgerExportFileTime = "20060102T150405Z"
)
