package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"glamslot-service/internal/app/config"
	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/dto/requests"
	"glamslot-service/internal/pkg/exceptions"
	"glamslot-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAdminRepository) Insert(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	args := m.Called(ctx, admin)
	if fn, ok := args.Get(0).(func(*models.Admin) *models.Admin); ok {
		return fn(admin), args.Error(1)
	}
	created, _ := args.Get(0).(*models.Admin)
	return created, args.Error(1)
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	args := m.Called(ctx, email)
	admin, _ := args.Get(0).(*models.Admin)
	return admin, args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, admin *models.Admin, ttl time.Duration) (*models.Session, error) {
	args := m.Called(ctx, admin, ttl)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

const testSecret = "test-secret"

func newTestAuthUsecase(admins *MockAdminRepository, sessions *MockSessionService) *authUsecase {
	return NewAuthUsecase(admins, sessions, &config.InternalConfig{
		JWT: config.AppJWT{Secret: testSecret, ExpTimeInHour: 168},
	}, zap.NewNop()).(*authUsecase)
}

func storedAdmin(t *testing.T, password string) *models.Admin {
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &models.Admin{
		ID:       primitive.NewObjectID(),
		Name:     "Admin",
		Email:    "admin@glamslot.com",
		Password: hashed,
		Role:     constvars.RoleAdmin,
	}
}

func TestAuthUsecase_Login(t *testing.T) {
	admin := storedAdmin(t, "correct-horse")

	t.Run("valid credentials", func(t *testing.T) {
		admins := new(MockAdminRepository)
		sessions := new(MockSessionService)
		admins.On("FindByEmail", mock.Anything, "admin@glamslot.com").Return(admin, nil)
		sessions.On("CreateSession", mock.Anything, admin, 168*time.Hour).
			Return(&models.Session{SessionID: "session-1", AdminID: admin.ID.Hex()}, nil)

		result, err := newTestAuthUsecase(admins, sessions).Login(context.Background(), &requests.Login{
			Email:    "admin@glamslot.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.Equal(t, admin.ID.Hex(), result.Admin.ID)
		assert.Equal(t, constvars.RoleAdmin, result.Admin.Role)

		sessionID, err := utils.ParseJWT(result.Token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "session-1", sessionID)
	})

	t.Run("wrong password", func(t *testing.T) {
		admins := new(MockAdminRepository)
		sessions := new(MockSessionService)
		admins.On("FindByEmail", mock.Anything, "admin@glamslot.com").Return(admin, nil)

		_, err := newTestAuthUsecase(admins, sessions).Login(context.Background(), &requests.Login{
			Email:    "admin@glamslot.com",
			Password: "wrong",
		})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrKindInvalidCredentials, customErr.Kind)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		admins := new(MockAdminRepository)
		admins.On("FindByEmail", mock.Anything, "nobody@glamslot.com").Return(nil, nil)

		_, err := newTestAuthUsecase(admins, new(MockSessionService)).Login(context.Background(), &requests.Login{
			Email:    "nobody@glamslot.com",
			Password: "whatever",
		})
		assert.True(t, exceptions.IsKind(err, constvars.ErrKindInvalidCredentials))
	})

	t.Run("missing password", func(t *testing.T) {
		admins := new(MockAdminRepository)

		_, err := newTestAuthUsecase(admins, new(MockSessionService)).Login(context.Background(), &requests.Login{
			Email: "admin@glamslot.com",
		})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrKindValidation, customErr.Kind)
		assert.Equal(t, constvars.ErrClientEmailAndPasswordRequired, customErr.ClientMessage)
		admins.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	sessions := new(MockSessionService)
	sessions.On("DeleteSession", mock.Anything, "session-1").Return(nil)

	uc := newTestAuthUsecase(new(MockAdminRepository), sessions)
	err := uc.Logout(context.Background(), &models.Session{SessionID: "session-1"})
	require.NoError(t, err)
	sessions.AssertExpectations(t)

	err = uc.Logout(context.Background(), nil)
	assert.True(t, exceptions.IsKind(err, constvars.ErrKindAuthRequired))
}

func TestAuthUsecase_CreateAdmin(t *testing.T) {
	request := &requests.CreateAdmin{
		Name:     "Owner",
		Email:    "owner@glamslot.com",
		Password: "long-enough",
	}

	t.Run("hashes password", func(t *testing.T) {
		admins := new(MockAdminRepository)
		admins.On("FindByEmail", mock.Anything, "owner@glamslot.com").Return(nil, nil)
		admins.On("Insert", mock.Anything, mock.AnythingOfType("*models.Admin")).
			Return(func(admin *models.Admin) *models.Admin {
				admin.ID = primitive.NewObjectID()
				return admin
			}, nil)

		admin, err := newTestAuthUsecase(admins, new(MockSessionService)).CreateAdmin(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, constvars.RoleAdmin, admin.Role)
		assert.NotEqual(t, "long-enough", admin.Password)
		assert.True(t, utils.CheckPasswordHash("long-enough", admin.Password))
	})

	t.Run("email taken", func(t *testing.T) {
		admins := new(MockAdminRepository)
		admins.On("FindByEmail", mock.Anything, "owner@glamslot.com").Return(&models.Admin{Email: "owner@glamslot.com"}, nil)

		_, err := newTestAuthUsecase(admins, new(MockSessionService)).CreateAdmin(context.Background(), request)
		assert.True(t, exceptions.IsKind(err, constvars.ErrKindConflict))
		admins.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := newTestAuthUsecase(new(MockAdminRepository), new(MockSessionService)).CreateAdmin(context.Background(), &requests.CreateAdmin{
			Name:     "Owner",
			Email:    "owner@glamslot.com",
			Password: "short",
		})
		assert.True(t, exceptions.IsKind(err, constvars.ErrKindValidation))
	})

	t.Run("store error", func(t *testing.T) {
		admins := new(MockAdminRepository)
		admins.On("FindByEmail", mock.Anything, "owner@glamslot.com").Return(nil, exceptions.ErrMongoDBFindDocument(errors.New("timeout")))

		_, err := newTestAuthUsecase(admins, new(MockSessionService)).CreateAdmin(context.Background(), request)
		assert.True(t, exceptions.IsKind(err, constvars.ErrKindInternal))
	})
}
