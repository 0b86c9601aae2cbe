package responses

import "glamslot-service/internal/app/models"

type SlotFailure struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

type CreateSlots struct {
	Created int                `json:"created"`
	Failed  int                `json:"failed"`
	Data    []*models.TimeSlot `json:"data"`
	Errors  []SlotFailure      `json:"errors,omitempty"`
}

type EnsureDefaultSlots struct {
	Date    string `json:"date"`
	Created int    `json:"created"`
}
