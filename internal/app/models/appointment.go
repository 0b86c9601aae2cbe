package models

import (
	"glamslot-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID        primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	Name      string              `json:"name" bson:"name"`
	Phone     string              `json:"phone" bson:"phone"`
	Date      time.Time           `json:"date" bson:"date"`
	Time      string              `json:"time" bson:"time"`
	Status    string              `json:"status" bson:"status"`
	TimeSlot  *primitive.ObjectID `json:"timeSlot" bson:"timeSlot"`
	TimeModel `bson:",inline"`
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == constvars.AppointmentStatusCancelled
}

// CanTransitionTo reports whether status may move from the current value to next.
// Same-status updates are allowed and have no effect.
func (a *Appointment) CanTransitionTo(next string) bool {
	if a.Status == next {
		return true
	}
	switch a.Status {
	case constvars.AppointmentStatusPending:
		return next == constvars.AppointmentStatusApproved || next == constvars.AppointmentStatusCancelled
	case constvars.AppointmentStatusApproved:
		return next == constvars.AppointmentStatusCancelled
	default:
		return false
	}
}
