package contracts

import (
	"context"
	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/dto/requests"
	"glamslot-service/internal/pkg/dto/responses"
	"glamslot-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SlotUsecase interface {
	CreateSlots(ctx context.Context, request *requests.CreateSlots) (*responses.CreateSlots, error)
	ListAvailable(ctx context.Context, date string) ([]*models.TimeSlot, error)
	EnsureDefaultSlots(ctx context.Context, date string) (*responses.EnsureDefaultSlots, error)
	ListAll(ctx context.Context, date string) ([]*models.TimeSlotWithBooker, error)
	DeleteSlot(ctx context.Context, slotID string) error
}

// SlotRepository is the slot side of the durable store. MarkBooked, MarkReleased
// and DeleteUnbooked are conditional single-document writes; they report
// whether the predicate matched instead of failing.
type SlotRepository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, slot *models.TimeSlot) (*models.TimeSlot, error)
	InsertManyIgnoreDuplicates(ctx context.Context, slots []*models.TimeSlot) (int, error)
	CountByDay(ctx context.Context, day utils.DayRange) (int64, error)
	FindAvailableByDay(ctx context.Context, day utils.DayRange) ([]*models.TimeSlot, error)
	FindByDayAndTime(ctx context.Context, day utils.DayRange, time string) (*models.TimeSlot, error)
	FindByID(ctx context.Context, slotID primitive.ObjectID) (*models.TimeSlot, error)
	FindAllWithBooker(ctx context.Context, day *utils.DayRange) ([]*models.TimeSlotWithBooker, error)
	MarkBooked(ctx context.Context, slotID, appointmentID primitive.ObjectID) (bool, error)
	MarkReleased(ctx context.Context, slotID, appointmentID primitive.ObjectID) (bool, error)
	DeleteUnbooked(ctx context.Context, slotID primitive.ObjectID) (bool, error)
}
