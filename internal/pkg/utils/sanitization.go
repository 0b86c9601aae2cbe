package utils

import (
	"glamslot-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
}

func SanitizeUpdateAppointmentStatusRequest(input *requests.UpdateAppointmentStatus) {
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
}

func SanitizeCreateSlotsRequest(input *requests.CreateSlots) {
	for i := range input.Slots {
		input.Slots[i].Date = strings.TrimSpace(input.Slots[i].Date)
		input.Slots[i].Time = strings.TrimSpace(input.Slots[i].Time)
	}
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}
