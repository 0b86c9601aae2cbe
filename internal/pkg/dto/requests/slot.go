package requests

type SlotItem struct {
	Date string `json:"date" validate:"required,slot_date"`
	Time string `json:"time" validate:"required,slot_time"`
}

type CreateSlots struct {
	Slots []SlotItem `json:"slots" validate:"required,min=1,dive"`
}
