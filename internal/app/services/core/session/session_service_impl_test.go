package session

import (
	"context"
	"testing"
	"time"

	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func TestSessionService_CreateSession(t *testing.T) {
	ctx := context.Background()
	admin := &models.Admin{ID: primitive.NewObjectID(), Email: "admin@glamslot.com", Name: "Admin", Role: "admin"}

	repo := new(MockRedisRepository)
	repo.On("Set", ctx, mock.MatchedBy(func(key string) bool {
		return len(key) > len("session:")
	}), mock.AnythingOfType("*models.Session"), time.Hour).Return(nil)

	service := NewSessionService(repo)
	session, err := service.CreateSession(ctx, admin, time.Hour)

	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, admin.ID.Hex(), session.AdminID)
	assert.Equal(t, "admin", session.Role)
	repo.AssertExpectations(t)
}

func TestSessionService_GetSession(t *testing.T) {
	ctx := context.Background()

	t.Run("missing session", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "session:abc").Return("", nil)

		_, err := NewSessionService(repo).GetSession(ctx, "abc")
		assert.True(t, exceptions.IsKind(err, constvars.ErrKindAuthRequired))
	})

	t.Run("stored session", func(t *testing.T) {
		stored, _ := json.Marshal(models.Session{SessionID: "abc", AdminID: "1", ExpiresAt: time.Now().Add(time.Hour)})
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "session:abc").Return(string(stored), nil)

		session, err := NewSessionService(repo).GetSession(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "1", session.AdminID)
	})

	t.Run("expired session", func(t *testing.T) {
		stored, _ := json.Marshal(models.Session{SessionID: "abc", ExpiresAt: time.Now().Add(-time.Minute)})
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "session:abc").Return(string(stored), nil)

		_, err := NewSessionService(repo).GetSession(ctx, "abc")
		assert.ErrorIs(t, err, ErrSessionExpired)
	})
}
