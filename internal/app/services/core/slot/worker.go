package slot

import (
	"context"
	"glamslot-service/internal/app/config"
	"glamslot-service/internal/app/contracts"
	"glamslot-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// provisionerLockKey keeps a single instance provisioning at a time.
const provisionerLockKey = "lock:slot-provisioner:leader"

const provisionerLockTTL = 2 * time.Minute

// Worker provisions the default slot set for the coming days on a cron schedule.
type Worker struct {
	log         *zap.Logger
	cfg         *config.InternalConfig
	locker      contracts.LockerService
	slotUsecase contracts.SlotUsecase
	cron        *cron.Cron
	runCtx      context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	now         func() time.Time
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, slotUsecase contracts.SlotUsecase) *Worker {
	return &Worker{
		log:         log,
		cfg:         cfg,
		locker:      lockerSvc,
		slotUsecase: slotUsecase,
		now:         time.Now,
	}
}

// Start schedules the provisioning run and also runs it once right away.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	c := cron.New()
	_, err := c.AddFunc(w.cfg.Booking.SlotWorkerCronSpec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("slot.worker: invalid cron spec, falling back to @daily",
			zap.String("cron_spec", w.cfg.Booking.SlotWorkerCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.runOnce(w.runCtx)
	}()
}

// Stop cancels in-flight runs and waits for the scheduler and the startup run to drain.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
	w.wg.Wait()
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, provisionerLockKey, provisionerLockTTL)
	if err != nil {
		w.log.Warn("slot.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("slot.worker: leader lock not acquired, another instance is provisioning")
		return
	}
	defer w.locker.Unlock(context.Background(), provisionerLockKey, token)

	today := w.now().UTC()
	daysAhead := w.cfg.Booking.SlotWorkerDaysAhead
	if daysAhead <= 0 {
		daysAhead = 1
	}

	total := 0
	for i := 0; i < daysAhead; i++ {
		if ctx.Err() != nil {
			return
		}

		date := today.AddDate(0, 0, i).Format(constvars.DateLayoutYYYYMMDD)
		result, err := w.slotUsecase.EnsureDefaultSlots(ctx, date)
		if err != nil {
			w.log.Warn("slot.worker: provisioning failed",
				zap.String(constvars.LoggingSlotDateKey, date),
				zap.Error(err),
			)
			continue
		}
		total += result.Created
	}

	w.log.Info("slot.worker: provisioning finished",
		zap.Int("days_ahead", daysAhead),
		zap.Int(constvars.LoggingCreatedCountKey, total),
	)
}
