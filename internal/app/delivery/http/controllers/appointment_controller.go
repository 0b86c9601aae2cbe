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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	InternalConfig     *config.InternalConfig
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, internalConfig *config.InternalConfig) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r, "AppointmentController.CreateAppointment")
	if !ok {
		return
	}
	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateAppointment)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreateAppointmentRequest(request)

	ctx, cancel := usecaseContext(ctrl.InternalConfig, requestID)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request)
	if err != nil {
		ctrl.Log.Error("Error in AppointmentUsecase.CreateAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r, "AppointmentController.ListAppointments")
	if !ok {
		return
	}
	ctrl.Log.Info("AppointmentController.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := usecaseContext(ctrl.InternalConfig, requestID)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.ListAppointments(ctx)
	if err != nil {
		ctrl.Log.Error("Error in AppointmentUsecase.ListAppointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponseWithCount(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, len(response), response)
}

func (ctrl *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r, "AppointmentController.UpdateStatus")
	if !ok {
		return
	}

	request := new(requests.UpdateAppointmentStatus)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.AppointmentID = chi.URLParam(r, constvars.URLParamAppointmentID)
	utils.SanitizeUpdateAppointmentStatusRequest(request)

	ctrl.Log.Info("AppointmentController.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID))

	ctx, cancel := usecaseContext(ctrl.InternalConfig, requestID)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.UpdateStatus(ctx, request)
	if err != nil {
		ctrl.Log.Error("Error in AppointmentUsecase.UpdateStatus",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentStatusSuccessMessage, response)
}

func (ctrl *AppointmentController) ExportAppointments(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r, "AppointmentController.ExportAppointments")
	if !ok {
		return
	}
	ctrl.Log.Info("AppointmentController.ExportAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := usecaseContext(ctrl.InternalConfig, requestID)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.ExportAppointments(ctx)
	if err != nil {
		ctrl.Log.Error("Error in AppointmentUsecase.ExportAppointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportAppointmentsSuccessMessage, response)
}
