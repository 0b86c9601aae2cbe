package constvars

const (
	EventAppointmentCreated       = "appointment.created"
	EventAppointmentStatusChanged = "appointment.status_changed"
	EventSlotReleased             = "slot.released"

	EventExchangeKind = "topic"
)
