package constvars

const (
	QueryParamsDate = "date"
)

const (
	URLParamSlotID        = "slot_id"
	URLParamAppointmentID = "appointment_id"
)
