package requests

type CreateAppointment struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,phone_number"`
	Date  string `json:"date" validate:"required,slot_date"`
	Time  string `json:"time" validate:"required,slot_time"`
}

type UpdateAppointmentStatus struct {
	AppointmentID string `json:"-" validate:"required,object_id"`
	Status        string `json:"status" validate:"required,oneof=pending approved cancelled"`
}
