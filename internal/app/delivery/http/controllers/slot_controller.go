package controllers

import (
	"glamslot-service/internal/app/config"
	"glamslot-service/internal/app/contracts"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/dto/requests"
	"glamslot-service/internal/pkg/exceptions"
	"glamslot-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SlotController struct {
	Log            *zap.Logger
	SlotUsecase    contracts.SlotUsecase
	InternalConfig *config.InternalConfig
}

func NewSlotController(logger *zap.Logger, slotUsecase contracts.SlotUsecase, internalConfig *config.InternalConfig) *SlotController {
	return &SlotController{
		Log:            logger,
		SlotUsecase:    slotUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *SlotController) CreateSlots(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r, "SlotController.CreateSlots")
	if !ok {
		return
	}
	ctrl.Log.Info("SlotController.CreateSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateSlots)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreateSlotsRequest(request)

	ctx, cancel := usecaseContext(ctrl.InternalConfig, requestID)
	defer cancel()

	response, err := ctrl.SlotUsecase.CreateSlots(ctx, request)
	if err != nil {
		ctrl.Log.Error("Error in SlotUsecase.CreateSlots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSlotsSuccessMessage, response)
}

func (ctrl *SlotController) EnsureDefaultSlots(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r, "SlotController.EnsureDefaultSlots")
	if !ok {
		return
	}
	date := utils.GetDateQueryParam(r)
	ctrl.Log.Info("SlotController.EnsureDefaultSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotDateKey, date))

	ctx, cancel := usecaseContext(ctrl.InternalConfig, requestID)
	defer cancel()

	response, err := ctrl.SlotUsecase.EnsureDefaultSlots(ctx, date)
	if err != nil {
		ctrl.Log.Error("Error in SlotUsecase.EnsureDefaultSlots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.EnsureDefaultSlotsSuccessMessage, response)
}

func (ctrl *SlotController) ListAvailable(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r, "SlotController.ListAvailable")
	if !ok {
		return
	}
	date := utils.GetDateQueryParam(r)

	ctx, cancel := usecaseContext(ctrl.InternalConfig, requestID)
	defer cancel()

	response, err := ctrl.SlotUsecase.ListAvailable(ctx, date)
	if err != nil {
		ctrl.Log.Error("Error in SlotUsecase.ListAvailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithCount(w, constvars.StatusOK, constvars.GetAvailableSlotsSuccessMessage, len(response), response)
}

func (ctrl *SlotController) ListAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r, "SlotController.ListAll")
	if !ok {
		return
	}
	date := utils.GetDateQueryParam(r)

	ctx, cancel := usecaseContext(ctrl.InternalConfig, requestID)
	defer cancel()

	response, err := ctrl.SlotUsecase.ListAll(ctx, date)
	if err != nil {
		ctrl.Log.Error("Error in SlotUsecase.ListAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithCount(w, constvars.StatusOK, constvars.GetSlotsSuccessMessage, len(response), response)
}

func (ctrl *SlotController) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r, "SlotController.DeleteSlot")
	if !ok {
		return
	}
	slotID := chi.URLParam(r, constvars.URLParamSlotID)
	ctrl.Log.Info("SlotController.DeleteSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slotID))

	ctx, cancel := usecaseContext(ctrl.InternalConfig, requestID)
	defer cancel()

	if err := ctrl.SlotUsecase.DeleteSlot(ctx, slotID); err != nil {
		ctrl.Log.Error("Error in SlotUsecase.DeleteSlot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSlotSuccessMessage, nil)
}
