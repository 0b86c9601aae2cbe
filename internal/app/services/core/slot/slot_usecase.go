package slot

import (
	"context"
	"fmt"
	"glamslot-service/internal/app/config"
	"glamslot-service/internal/app/contracts"
	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/dto/requests"
	"glamslot-service/internal/pkg/dto/responses"
	"glamslot-service/internal/pkg/exceptions"
	"glamslot-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type slotUsecase struct {
	slots  contracts.SlotRepository
	config *config.InternalConfig
	logger *zap.Logger
}

func NewSlotUsecase(
	slots contracts.SlotRepository,
	config *config.InternalConfig,
	logger *zap.Logger,
) contracts.SlotUsecase {
	return &slotUsecase{
		slots:  slots,
		config: config,
		logger: logger,
	}
}

// CreateSlots inserts each item on its own. Duplicates and store failures are
// reported per item and never abort the batch.
func (uc *slotUsecase) CreateSlots(ctx context.Context, request *requests.CreateSlots) (*responses.CreateSlots, error) {
	requestID := utils.GetRequestID(ctx)
	if request == nil || len(request.Slots) == 0 {
		return nil, exceptions.ErrNoSlotsProvided(nil)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result := &responses.CreateSlots{
		Data: make([]*models.TimeSlot, 0, len(request.Slots)),
	}
	for _, item := range request.Slots {
		day, err := utils.ParseDay(item.Date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}

		created, err := uc.slots.Insert(ctx, &models.TimeSlot{
			Date: day.Start,
			Time: item.Time,
		})
		if err != nil {
			message := fmt.Sprintf(constvars.ErrClientSlotCreateFailedFormat, err.Error())
			if exceptions.IsKind(err, constvars.ErrKindConflict) {
				message = fmt.Sprintf(constvars.ErrClientSlotAlreadyExistsFormat, item.Date, item.Time)
			}
			uc.logger.Warn("slotUsecase.CreateSlots item failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSlotDateKey, item.Date),
				zap.String(constvars.LoggingSlotTimeKey, item.Time),
				zap.Error(err),
			)
			result.Failed++
			result.Errors = append(result.Errors, responses.SlotFailure{
				Date:    item.Date,
				Time:    item.Time,
				Message: message,
			})
			continue
		}

		result.Created++
		result.Data = append(result.Data, created)
	}

	uc.logger.Info("slotUsecase.CreateSlots processed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCreatedCountKey, result.Created),
		zap.Int(constvars.LoggingFailedCountKey, result.Failed),
	)
	return result, nil
}

// ListAvailable returns the unbooked slots of one day ordered by time. It only
// provisions defaults first when auto seeding is switched on.
func (uc *slotUsecase) ListAvailable(ctx context.Context, date string) ([]*models.TimeSlot, error) {
	day, err := parseRequiredDay(date)
	if err != nil {
		return nil, err
	}

	if uc.config.Booking.AutoSeedDefaultSlots {
		if _, err := uc.ensureDefaultSlots(ctx, day); err != nil {
			return nil, err
		}
	}

	return uc.slots.FindAvailableByDay(ctx, day)
}

func (uc *slotUsecase) EnsureDefaultSlots(ctx context.Context, date string) (*responses.EnsureDefaultSlots, error) {
	day, err := parseRequiredDay(date)
	if err != nil {
		return nil, err
	}

	created, err := uc.ensureDefaultSlots(ctx, day)
	if err != nil {
		return nil, err
	}
	return &responses.EnsureDefaultSlots{
		Date:    day.String(),
		Created: created,
	}, nil
}

// ensureDefaultSlots writes the default hourly set only when the day has no
// slots at all, booked or not.
func (uc *slotUsecase) ensureDefaultSlots(ctx context.Context, day utils.DayRange) (int, error) {
	count, err := uc.slots.CountByDay(ctx, day)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	defaults := make([]*models.TimeSlot, 0, len(constvars.DefaultSlotTimes))
	for _, slotTime := range constvars.DefaultSlotTimes {
		defaults = append(defaults, &models.TimeSlot{
			Date: day.Start,
			Time: slotTime,
		})
	}

	created, err := uc.slots.InsertManyIgnoreDuplicates(ctx, defaults)
	if err != nil {
		return 0, err
	}

	uc.logger.Info("slotUsecase.ensureDefaultSlots provisioned default slots",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSlotDateKey, day.String()),
		zap.Int(constvars.LoggingCreatedCountKey, created),
	)
	return created, nil
}

// ListAll returns every slot, or one day's slots when date is set.
func (uc *slotUsecase) ListAll(ctx context.Context, date string) ([]*models.TimeSlotWithBooker, error) {
	if date == "" {
		return uc.slots.FindAllWithBooker(ctx, nil)
	}

	day, err := utils.ParseDay(date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	return uc.slots.FindAllWithBooker(ctx, &day)
}

func (uc *slotUsecase) DeleteSlot(ctx context.Context, slotID string) error {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamSlotID)
	}

	slot, err := uc.slots.FindByID(ctx, objectID)
	if err != nil {
		return err
	}
	if slot == nil {
		return exceptions.ErrSlotNotExist(nil)
	}
	if slot.IsBooked {
		return exceptions.ErrSlotIsBooked(nil)
	}

	deleted, err := uc.slots.DeleteUnbooked(ctx, objectID)
	if err != nil {
		return err
	}
	if !deleted {
		// booked or removed between the read and the delete
		current, err := uc.slots.FindByID(ctx, objectID)
		if err != nil {
			return err
		}
		if current == nil {
			return exceptions.ErrSlotNotExist(nil)
		}
		return exceptions.ErrSlotIsBooked(nil)
	}

	uc.logger.Info("slotUsecase.DeleteSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)
	return nil
}

func parseRequiredDay(date string) (utils.DayRange, error) {
	if date == "" {
		return utils.DayRange{}, exceptions.ErrDateRequired(nil)
	}
	day, err := utils.ParseDay(date)
	if err != nil {
		return utils.DayRange{}, exceptions.ErrCannotParseDate(err)
	}
	return day, nil
}
