package auth

import (
	"context"
	"glamslot-service/internal/app/config"
	"glamslot-service/internal/app/contracts"
	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/dto/requests"
	"glamslot-service/internal/pkg/dto/responses"
	"glamslot-service/internal/pkg/exceptions"
	"glamslot-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	AdminRepository contracts.AdminRepository
	SessionService  contracts.SessionService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	adminRepository contracts.AdminRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AdminRepository: adminRepository,
		SessionService:  sessionService,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

// Login checks the credentials, opens a session and signs a token that
// carries the session id.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Email == "" || request.Password == "" {
		return nil, exceptions.ErrEmailAndPasswordRequired(nil)
	}

	admin, err := uc.AdminRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	// unknown email and wrong password look the same to the caller
	if admin == nil || !utils.CheckPasswordHash(request.Password, admin.Password) {
		uc.Log.Info("authUsecase.Login rejected credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	ttl := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session, err := uc.SessionService.CreateSession(ctx, admin, ttl)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdminIDKey, admin.ID.Hex()),
	)
	return &responses.Login{
		Token: token,
		Admin: ToAdminProfile(admin),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID := utils.GetRequestID(ctx)
	if session == nil {
		return exceptions.ErrMissingSessionData(nil)
	}

	err := uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdminIDKey, session.AdminID),
	)
	return nil
}

// CreateAdmin provisions an operator account with a bcrypt password hash.
func (uc *authUsecase) CreateAdmin(ctx context.Context, request *requests.CreateAdmin) (*models.Admin, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.AdminRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrAdminAlreadyExists(nil)
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	admin, err := uc.AdminRepository.Insert(ctx, &models.Admin{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashed,
		Role:     constvars.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.CreateAdmin succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingAdminIDKey, admin.ID.Hex()),
	)
	return admin, nil
}

func ToAdminProfile(admin *models.Admin) *responses.AdminProfile {
	return &responses.AdminProfile{
		ID:    admin.ID.Hex(),
		Name:  admin.Name,
		Email: admin.Email,
		Role:  admin.Role,
	}
}
