package medications

import (
	"context"
	"time"

	"carebridge-service/internal/app/config"
	"carebridge-service/internal/app/contracts"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// leaderLockKey is the fixed key used to ensure a single auto-complete leader.
const leaderLockKey = "medautocomplete:leader"

// Worker periodically marks overdue prescriptions as completed.
type Worker struct {
	log               *zap.Logger
	cfg               *config.InternalConfig
	locker            contracts.LockerService
	medicationUsecase contracts.MedicationUsecase
	cron              *cron.Cron
	runCtx            context.Context
	cancel            context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, medicationUsecase contracts.MedicationUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, medicationUsecase: medicationUsecase}
}

// Start begins the periodic loop.
func (w *Worker) Start(ctx context.Context) {
	// create run context we can cancel from Stop()
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.MedicationWorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("medications.worker: failed to schedule with provided cron spec; falling back to @daily", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop gracefully stops the worker cron and any in-flight runOnce refreshers.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop() // wait for running jobs to finish
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute // fixed small TTL; cron cadence is independent
	acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, ttl)
	if err != nil {
		w.log.Warn("medications.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("medications.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, leaderLockKey, token)

	// Keep the lock alive while the scan runs.
	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				w.log.Info("medications.worker: refreshing leader lock TTL", zap.String("key", leaderLockKey), zap.String("token", token), zap.Duration("ttl", ttl))
				if err := w.locker.Refresh(ctx, leaderLockKey, token, ttl); err != nil {
					w.log.Warn("medications.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	count, err := w.medicationUsecase.AutoCompleteOverdue(ctx)
	if err != nil {
		w.log.Warn("medications.worker: auto-complete sweep failed", zap.Error(err))
		return
	}
	w.log.Info("medications.worker: auto-complete sweep finished", zap.Int("completed", count))
}
