package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/pboachie/pi-lotto/internal/config"
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// nowFunc is swapped in tests
var nowFunc = time.Now

// Scheduler drives the maintenance jobs: the pool sweep on a fixed
// interval and the stale-reservation sweep once a day at the configured
// hour.
type Scheduler struct {
	jobs   domain.MaintenanceJobs
	cfg    *config.Config
	logger *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a new job scheduler
func NewScheduler(jobs domain.MaintenanceJobs, cfg *config.Config, logger *logger.Logger) *Scheduler {
	return &Scheduler{
		jobs:   jobs,
		cfg:    cfg,
		logger: logger,
	}
}

// Start launches the background sweeps. Call Stop to drain them.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(2)
	go s.runPoolSweep(ctx)
	go s.runExpirySweep(ctx)

	s.logger.Info("Job scheduler started",
		zap.Duration("poolInterval", s.cfg.Jobs.PoolInterval),
		zap.Int("expiryHour", s.cfg.Jobs.ExpiryHour),
		zap.Duration("expiryAge", s.cfg.Jobs.ExpiryAge))
}

// Stop signals the sweeps to exit and waits for them to finish. A sweep
// already running completes its current pass first.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.logger.Info("Job scheduler stopped")
}

func (s *Scheduler) runPoolSweep(ctx context.Context) {
	defer s.wg.Done()

	interval := s.cfg.Jobs.PoolInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.jobs.RecomputePools(); err != nil {
				s.logger.Error("Pool sweep pass failed", zap.Error(err))
			}
		}
	}
}

func (s *Scheduler) runExpirySweep(ctx context.Context) {
	defer s.wg.Done()

	for {
		timer := time.NewTimer(s.untilNextExpiryRun())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if _, err := s.jobs.ExpireStalePending(); err != nil {
				s.logger.Error("Expiry sweep pass failed", zap.Error(err))
			}
		}
	}
}

// untilNextExpiryRun returns the duration until the next daily run at the
// configured local hour.
func (s *Scheduler) untilNextExpiryRun() time.Duration {
	now := nowFunc()
	next := time.Date(now.Year(), now.Month(), now.Day(), s.cfg.Jobs.ExpiryHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next.Sub(now)
}
