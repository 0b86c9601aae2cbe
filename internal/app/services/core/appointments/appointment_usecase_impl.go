package appointments

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
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const defaultBookingLockTTL = 10 * time.Second

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	SlotRepository        contracts.SlotRepository
	LockService           contracts.LockerService
	Publisher             contracts.EventPublisher
	Storage               contracts.Storage
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	slotRepository contracts.SlotRepository,
	lockService contracts.LockerService,
	publisher contracts.EventPublisher,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		SlotRepository:        slotRepository,
		LockService:           lockService,
		Publisher:             publisher,
		Storage:               storage,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

type appointmentCreatedEvent struct {
	AppointmentID string `json:"appointmentId"`
	SlotID        string `json:"slotId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

type appointmentStatusChangedEvent struct {
	AppointmentID string `json:"appointmentId"`
	From          string `json:"from"`
	To            string `json:"to"`
}

type slotReleasedEvent struct {
	SlotID        string `json:"slotId"`
	AppointmentID string `json:"appointmentId"`
}

// CreateAppointment books the slot matching date and time. The appointment is
// written first and the slot is then flipped with a conditional update; losing
// that update cancels the new appointment and reports a slot conflict.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	day, err := utils.ParseDay(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	slot, err := uc.SlotRepository.FindByDayAndTime(ctx, day, request.Time)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}
	if slot.IsBooked {
		return nil, exceptions.ErrSlotConflict(nil, constvars.ErrDevSlotAlreadyBooked)
	}

	lockKey := fmt.Sprintf(constvars.RedisSlotBookingKeyFormat, slot.ID.Hex())
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, uc.lockTTL())
	if err != nil {
		// the conditional slot update still guards the booking
		uc.Log.Warn("appointmentUsecase.CreateAppointment booking lock attempt failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
	} else if !acquired {
		return nil, exceptions.ErrSlotConflict(nil, constvars.ErrDevSlotBookingLockHeld)
	} else {
		defer uc.releaseLock(ctx, lockKey, lockValue)
	}

	slotID := slot.ID
	appointment, err := uc.AppointmentRepository.Insert(ctx, &models.Appointment{
		Name:     request.Name,
		Phone:    request.Phone,
		Date:     day.Start,
		Time:     request.Time,
		Status:   constvars.AppointmentStatusPending,
		TimeSlot: &slotID,
	})
	if err != nil {
		return nil, err
	}

	booked, err := uc.SlotRepository.MarkBooked(ctx, slotID, appointment.ID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment failed to mark slot booked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
			zap.String(constvars.LoggingSlotIDKey, slotID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}
	if !booked {
		uc.compensate(ctx, appointment)
		return nil, exceptions.ErrSlotConflict(nil, constvars.ErrDevSlotBookingRaceLost)
	}

	uc.publish(ctx, constvars.EventAppointmentCreated, appointmentCreatedEvent{
		AppointmentID: appointment.ID.Hex(),
		SlotID:        slotID.Hex(),
		Date:          day.String(),
		Time:          appointment.Time,
	})

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
		zap.String(constvars.LoggingSlotIDKey, slotID.Hex()),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context) ([]*models.Appointment, error) {
	return uc.AppointmentRepository.FindAll(ctx)
}

// UpdateStatus applies an allowed status transition. Cancelling releases the
// slot only while the slot is still held by this appointment.
func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.String(constvars.LoggingAppointmentStatusKey, request.Status),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointmentID, err := primitive.ObjectIDFromHex(request.AppointmentID)
	if err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	from := appointment.Status
	if !appointment.CanTransitionTo(request.Status) {
		return nil, exceptions.ErrAppointmentStatusTransition(nil, from, request.Status)
	}
	if from == request.Status {
		return appointment, nil
	}

	released := false
	if request.Status == constvars.AppointmentStatusCancelled && appointment.TimeSlot != nil {
		released, err = uc.SlotRepository.MarkReleased(ctx, *appointment.TimeSlot, appointment.ID)
		if err != nil {
			return nil, err
		}
		if released {
			uc.publish(ctx, constvars.EventSlotReleased, slotReleasedEvent{
				SlotID:        appointment.TimeSlot.Hex(),
				AppointmentID: appointment.ID.Hex(),
			})
		}
	}

	updated, err := uc.AppointmentRepository.UpdateStatus(ctx, appointment.ID, from, request.Status)
	if err != nil {
		if released {
			uc.restoreSlot(ctx, appointment)
		}
		return nil, err
	}
	if !updated {
		current, err := uc.AppointmentRepository.FindByID(ctx, appointment.ID)
		if err != nil {
			if released {
				uc.restoreSlot(ctx, appointment)
			}
			return nil, err
		}
		if current == nil {
			return nil, exceptions.ErrAppointmentNotExist(nil)
		}
		if current.Status == request.Status {
			return current, nil
		}
		// lost the race to another transition, the appointment still holds the slot
		if released {
			uc.restoreSlot(ctx, current)
		}
		return nil, exceptions.ErrAppointmentModified(nil)
	}

	appointment.Status = request.Status
	appointment.SetUpdatedAt()

	uc.publish(ctx, constvars.EventAppointmentStatusChanged, appointmentStatusChangedEvent{
		AppointmentID: appointment.ID.Hex(),
		From:          from,
		To:            request.Status,
	})

	uc.Log.Info("appointmentUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
		zap.String(constvars.LoggingAppointmentStatusKey, appointment.Status),
	)
	return appointment, nil
}

// ExportAppointments writes every appointment as a JSON document to object
// storage and returns a presigned download link.
func (uc *appointmentUsecase) ExportAppointments(ctx context.Context) (*responses.ExportAppointments, error) {
	requestID := utils.GetRequestID(ctx)

	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(appointments)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	now := time.Now()
	bucketName := uc.InternalConfig.Minio.LedgerExportBucketName
	objectName, err := uc.Storage.UploadJSON(ctx, bucketName, utils.GenerateLedgerExportObjectName(now), body)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PresignedURLExpiryInMinute) * time.Minute
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.ExportAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.Int(constvars.LoggingCreatedCountKey, len(appointments)),
	)
	return &responses.ExportAppointments{
		ObjectName: objectName,
		Count:      len(appointments),
		URL:        url,
		ExpiresAt:  now.UTC().Add(expiry),
	}, nil
}

func (uc *appointmentUsecase) lockTTL() time.Duration {
	if uc.InternalConfig.Booking.LockTTLInSecond <= 0 {
		return defaultBookingLockTTL
	}
	return time.Duration(uc.InternalConfig.Booking.LockTTLInSecond) * time.Second
}

func (uc *appointmentUsecase) releaseLock(ctx context.Context, key, value string) {
	if err := uc.LockService.Unlock(ctx, key, value); err != nil {
		uc.Log.Warn("appointmentUsecase.releaseLock failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}

// compensate cancels an appointment whose slot was taken by someone else.
func (uc *appointmentUsecase) compensate(ctx context.Context, appointment *models.Appointment) {
	_, err := uc.AppointmentRepository.UpdateStatus(ctx, appointment.ID, constvars.AppointmentStatusPending, constvars.AppointmentStatusCancelled)
	if err != nil {
		uc.Log.Error("appointmentUsecase.compensate failed to cancel orphan appointment",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
			zap.Error(err),
		)
		return
	}
	appointment.Status = constvars.AppointmentStatusCancelled
}

// restoreSlot books the slot again for an appointment whose cancellation did
// not land. A slot taken by another booking in the meantime is only logged.
func (uc *appointmentUsecase) restoreSlot(ctx context.Context, appointment *models.Appointment) {
	if appointment.TimeSlot == nil {
		return
	}

	rebooked, err := uc.SlotRepository.MarkBooked(ctx, *appointment.TimeSlot, appointment.ID)
	if err != nil || !rebooked {
		uc.Log.Error("appointmentUsecase.restoreSlot failed to book slot again",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
			zap.String(constvars.LoggingSlotIDKey, appointment.TimeSlot.Hex()),
			zap.Bool("rebooked", rebooked),
			zap.Error(err),
		)
		return
	}

	uc.Log.Warn("appointmentUsecase.restoreSlot slot booked again after lost status update",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
		zap.String(constvars.LoggingSlotIDKey, appointment.TimeSlot.Hex()),
	)
}

func (uc *appointmentUsecase) publish(ctx context.Context, routingKey string, payload interface{}) {
	if uc.Publisher == nil {
		return
	}
	if err := uc.Publisher.Publish(ctx, routingKey, payload); err != nil {
		uc.Log.Warn("appointmentUsecase.publish failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRoutingKey, routingKey),
			zap.Error(err),
		)
	}
}
