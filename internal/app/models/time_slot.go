package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeSlot is one bookable (date, time) unit. Date is always midnight UTC.
type TimeSlot struct {
	ID       primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	Date     time.Time           `json:"date" bson:"date"`
	Time     string              `json:"time" bson:"time"`
	IsBooked bool                `json:"isBooked" bson:"isBooked"`
	BookedBy *primitive.ObjectID `json:"bookedBy" bson:"bookedBy"`

	TimeModel `bson:",inline"`
}

type SlotBooker struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Phone string             `json:"phone" bson:"phone"`
}

// TimeSlotWithBooker is a TimeSlot joined with the appointment holding it.
type TimeSlotWithBooker struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Date      time.Time          `json:"date" bson:"date"`
	Time      string             `json:"time" bson:"time"`
	IsBooked  bool               `json:"isBooked" bson:"isBooked"`
	BookedBy  *SlotBooker        `json:"bookedBy" bson:"booker,omitempty"`
	TimeModel `bson:",inline"`
}
