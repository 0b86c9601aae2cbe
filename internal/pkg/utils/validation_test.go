package utils

import (
	"testing"

	"glamslot-service/internal/pkg/dto/requests"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsValidSlotTime(t *testing.T) {
	for _, value := range []string{"00:00", "09:30", "10:00", "23:59"} {
		assert.True(t, IsValidSlotTime(value), value)
	}
	for _, value := range []string{"", "9:30", "24:00", "10:60", "10:00 ", "1000", "10:00:00"} {
		assert.False(t, IsValidSlotTime(value), value)
	}
}

func TestValidateStruct_CreateAppointment(t *testing.T) {
	valid := requests.CreateAppointment{
		Name:  "Ann",
		Phone: "0123456789",
		Date:  "2025-06-01",
		Time:  "10:00",
	}
	require.NoError(t, ValidateStruct(&valid))

	tests := []struct {
		name   string
		mutate func(r *requests.CreateAppointment)
		field  string
		tag    string
	}{
		{"Missing Name", func(r *requests.CreateAppointment) { r.Name = "" }, "name", "required"},
		{"Short Phone", func(r *requests.CreateAppointment) { r.Phone = "12345" }, "phone", "phone_number"},
		{"Phone With Plus", func(r *requests.CreateAppointment) { r.Phone = "+123456789" }, "phone", "phone_number"},
		{"Bad Date", func(r *requests.CreateAppointment) { r.Date = "01/06/2025" }, "date", "slot_date"},
		{"Bad Time", func(r *requests.CreateAppointment) { r.Time = "25:00" }, "time", "slot_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid
			tt.mutate(&request)

			err := ValidateStruct(&request)
			var validationErrors validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
			assert.Equal(t, tt.field, validationErrors[0].Field())
			assert.Equal(t, tt.tag, validationErrors[0].Tag())
		})
	}
}

func TestValidateStruct_UpdateAppointmentStatus(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		err := ValidateStruct(&requests.UpdateAppointmentStatus{
			AppointmentID: primitive.NewObjectID().Hex(),
			Status:        "approved",
		})
		assert.NoError(t, err)
	})

	t.Run("Malformed Object ID", func(t *testing.T) {
		err := ValidateStruct(&requests.UpdateAppointmentStatus{
			AppointmentID: "not-an-id",
			Status:        "approved",
		})
		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Equal(t, "object_id", validationErrors[0].Tag())
	})

	t.Run("Unknown Status", func(t *testing.T) {
		err := ValidateStruct(&requests.UpdateAppointmentStatus{
			AppointmentID: primitive.NewObjectID().Hex(),
			Status:        "done",
		})
		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Equal(t, "oneof", validationErrors[0].Tag())
	})
}

func TestValidateStruct_CreateSlotsDivesIntoItems(t *testing.T) {
	err := ValidateStruct(&requests.CreateSlots{
		Slots: []requests.SlotItem{
			{Date: "2025-06-01", Time: "10:00"},
			{Date: "2025-06-01", Time: "7pm"},
		},
	})

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, "slot_time", validationErrors[0].Tag())
}
