package slot

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"glamslot-service/internal/app/config"
	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/dto/requests"
	"glamslot-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

type MockSlotUsecase struct {
	mock.Mock
}

func (m *MockSlotUsecase) CreateSlots(ctx context.Context, request *requests.CreateSlots) (*responses.CreateSlots, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.CreateSlots)
	return result, args.Error(1)
}

func (m *MockSlotUsecase) ListAvailable(ctx context.Context, date string) ([]*models.TimeSlot, error) {
	args := m.Called(ctx, date)
	slots, _ := args.Get(0).([]*models.TimeSlot)
	return slots, args.Error(1)
}

func (m *MockSlotUsecase) EnsureDefaultSlots(ctx context.Context, date string) (*responses.EnsureDefaultSlots, error) {
	args := m.Called(ctx, date)
	result, _ := args.Get(0).(*responses.EnsureDefaultSlots)
	return result, args.Error(1)
}

func (m *MockSlotUsecase) ListAll(ctx context.Context, date string) ([]*models.TimeSlotWithBooker, error) {
	args := m.Called(ctx, date)
	slots, _ := args.Get(0).([]*models.TimeSlotWithBooker)
	return slots, args.Error(1)
}

func (m *MockSlotUsecase) DeleteSlot(ctx context.Context, slotID string) error {
	return m.Called(ctx, slotID).Error(0)
}

func newTestWorker(locker *MockLockerService, slots *MockSlotUsecase, daysAhead int) *Worker {
	worker := NewWorker(zap.NewNop(), &config.InternalConfig{
		Booking: config.AppBooking{SlotWorkerCronSpec: "@daily", SlotWorkerDaysAhead: daysAhead},
	}, locker, slots)
	worker.now = func() time.Time { return time.Date(2025, 6, 30, 8, 0, 0, 0, time.UTC) }
	return worker
}

func TestWorker_RunOnceProvisionsComingDays(t *testing.T) {
	locker := new(MockLockerService)
	slots := new(MockSlotUsecase)
	locker.On("TryLock", mock.Anything, provisionerLockKey, provisionerLockTTL).Return(true, "token-1", nil)
	locker.On("Unlock", mock.Anything, provisionerLockKey, "token-1").Return(nil)
	slots.On("EnsureDefaultSlots", mock.Anything, "2025-06-30").Return(&responses.EnsureDefaultSlots{Date: "2025-06-30", Created: 0}, nil)
	slots.On("EnsureDefaultSlots", mock.Anything, "2025-07-01").Return(nil, errors.New("store down"))
	slots.On("EnsureDefaultSlots", mock.Anything, "2025-07-02").Return(&responses.EnsureDefaultSlots{Date: "2025-07-02", Created: 7}, nil)

	newTestWorker(locker, slots, 3).runOnce(context.Background())

	slots.AssertNumberOfCalls(t, "EnsureDefaultSlots", 3)
	locker.AssertExpectations(t)
}

func TestWorker_RunOnceSkipsWithoutLeadership(t *testing.T) {
	t.Run("lock held elsewhere", func(t *testing.T) {
		locker := new(MockLockerService)
		slots := new(MockSlotUsecase)
		locker.On("TryLock", mock.Anything, provisionerLockKey, provisionerLockTTL).Return(false, "", nil)

		newTestWorker(locker, slots, 7).runOnce(context.Background())

		slots.AssertNotCalled(t, "EnsureDefaultSlots", mock.Anything, mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lock store unavailable", func(t *testing.T) {
		locker := new(MockLockerService)
		slots := new(MockSlotUsecase)
		locker.On("TryLock", mock.Anything, provisionerLockKey, provisionerLockTTL).Return(false, "", errors.New("connection refused"))

		newTestWorker(locker, slots, 7).runOnce(context.Background())

		slots.AssertNotCalled(t, "EnsureDefaultSlots", mock.Anything, mock.Anything)
	})
}

func TestWorker_RunOnceStopsWhenCancelled(t *testing.T) {
	locker := new(MockLockerService)
	slots := new(MockSlotUsecase)
	locker.On("TryLock", mock.Anything, provisionerLockKey, provisionerLockTTL).Return(true, "token-1", nil)
	locker.On("Unlock", mock.Anything, provisionerLockKey, "token-1").Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	newTestWorker(locker, slots, 7).runOnce(ctx)

	slots.AssertNotCalled(t, "EnsureDefaultSlots", mock.Anything, mock.Anything)
}

func TestWorker_RunOnceUsesUTCDay(t *testing.T) {
	locker := new(MockLockerService)
	slots := new(MockSlotUsecase)
	locker.On("TryLock", mock.Anything, provisionerLockKey, provisionerLockTTL).Return(true, "token-1", nil)
	locker.On("Unlock", mock.Anything, provisionerLockKey, "token-1").Return(nil)
	slots.On("EnsureDefaultSlots", mock.Anything, "2025-06-30").Return(&responses.EnsureDefaultSlots{Date: "2025-06-30", Created: 7}, nil)

	worker := newTestWorker(locker, slots, 1)
	jakarta := time.FixedZone("UTC+7", 7*60*60)
	// 01:00 on July 1st in UTC+7 is still June 30th in UTC.
	worker.now = func() time.Time { return time.Date(2025, 7, 1, 1, 0, 0, 0, jakarta) }
	worker.runOnce(context.Background())

	slots.AssertCalled(t, "EnsureDefaultSlots", mock.Anything, "2025-06-30")
	slots.AssertNotCalled(t, "EnsureDefaultSlots", mock.Anything, "2025-07-01")
}

func TestWorker_StopWaitsForStartupRun(t *testing.T) {
	locker := new(MockLockerService)
	slots := new(MockSlotUsecase)
	started := make(chan struct{})
	var unlocked atomic.Bool

	locker.On("TryLock", mock.Anything, provisionerLockKey, provisionerLockTTL).
		Run(func(mock.Arguments) { close(started) }).
		Return(true, "token-1", nil).Once()
	locker.On("Unlock", mock.Anything, provisionerLockKey, "token-1").
		Run(func(mock.Arguments) {
			time.Sleep(50 * time.Millisecond)
			unlocked.Store(true)
		}).
		Return(nil)
	slots.On("EnsureDefaultSlots", mock.Anything, mock.Anything).
		Return(&responses.EnsureDefaultSlots{Date: "2025-06-30"}, nil).Maybe()

	worker := newTestWorker(locker, slots, 1)
	worker.Start(context.Background())
	<-started
	worker.Stop()

	assert.True(t, unlocked.Load(), "startup run still in flight after Stop returned")
}
