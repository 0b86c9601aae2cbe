package constvars

const (
	ResponseUnknown = "unknown"

	// Auth messages
	LoginSuccess      = "successfully login"
	LogoutSuccess     = "successfully logout"
	GetProfileSuccess = "get profile successfully"

	// Slot messages
	CreateSlotsSuccessMessage        = "slots processed"
	EnsureDefaultSlotsSuccessMessage = "default slots provisioned"
	GetAvailableSlotsSuccessMessage  = "get available slots successfully"
	GetSlotsSuccessMessage           = "get slots successfully"
	DeleteSlotSuccessMessage         = "slot deleted successfully"

	// Appointment messages
	CreateAppointmentSuccessMessage       = "appointment booked successfully"
	GetAppointmentsSuccessMessage         = "get appointments successfully"
	UpdateAppointmentStatusSuccessMessage = "appointment status updated successfully"
	ExportAppointmentsSuccessMessage      = "appointments exported successfully"

	// Operational messages
	ServiceInfoMessage = "GlamSlot booking API is running"
	HealthyMessage     = "service healthy"
	UnhealthyMessage   = "service unhealthy"
)
