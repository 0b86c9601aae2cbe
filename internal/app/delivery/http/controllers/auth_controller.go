package controllers

import (
	"glamslot-service/internal/app/config"
	"glamslot-service/internal/app/contracts"
	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/dto/requests"
	"glamslot-service/internal/pkg/dto/responses"
	"glamslot-service/internal/pkg/exceptions"
	"glamslot-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r, "AuthController.Login")
	if !ok {
		return
	}

	request := new(requests.Login)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeLoginRequest(request)

	ctx, cancel := usecaseContext(ctrl.InternalConfig, requestID)
	defer cancel()

	response, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r, "AuthController.Logout")
	if !ok {
		return
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		ctrl.Log.Error("AuthController.Logout sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctx, cancel := usecaseContext(ctrl.InternalConfig, requestID)
	defer cancel()

	if err := ctrl.AuthUsecase.Logout(ctx, session); err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccess, &responses.AdminProfile{
		ID:    session.AdminID,
		Name:  session.Name,
		Email: session.Email,
		Role:  session.Role,
	})
}
