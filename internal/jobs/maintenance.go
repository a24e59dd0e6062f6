package jobs

import (
	"github.com/pboachie/pi-lotto/internal/config"
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// maintenanceJobs implements domain.MaintenanceJobs
type maintenanceJobs struct {
	transactionRepo domain.TransactionRepository
	gameRepo        domain.GameRepository
	cfg             *config.Config
	logger          *logger.Logger
}

// NewMaintenanceJobs creates the maintenance job set
func NewMaintenanceJobs(
	transactionRepo domain.TransactionRepository,
	gameRepo domain.GameRepository,
	cfg *config.Config,
	logger *logger.Logger,
) domain.MaintenanceJobs {
	return &maintenanceJobs{
		transactionRepo: transactionRepo,
		gameRepo:        gameRepo,
		cfg:             cfg,
		logger:          logger,
	}
}

// RecomputePools refreshes every active game's pool cache from the sum of
// completed entry-fee transactions. A failure on one game never blocks the
// others; the first error is reported after the sweep finishes.
func (j *maintenanceJobs) RecomputePools() error {
	games, err := j.gameRepo.GetActive()
	if err != nil {
		j.logger.Error("Pool sweep could not list active games", zap.Error(err))
		return domain.NewPersistenceError("list active games", err)
	}

	var firstErr error
	for _, game := range games {
		sum, err := j.transactionRepo.SumCompletedByTypeForGame(game.ID, domain.TransactionTypeLottoEntry)
		if err != nil {
			j.logger.Error("Pool sum failed for game",
				zap.Uint("gameID", game.ID),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := j.gameRepo.UpdatePoolAmount(game.ID, sum); err != nil {
			j.logger.Error("Pool update failed for game",
				zap.Uint("gameID", game.ID),
				zap.Float64("poolAmount", sum),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		j.logger.Debug("Pool recomputed",
			zap.Uint("gameID", game.ID),
			zap.Float64("poolAmount", sum))
	}

	if firstErr != nil {
		return domain.NewPersistenceError("recompute pools", firstErr)
	}
	return nil
}

// ExpireStalePending cancels pending lotto_entry reservations older than
// the configured age. Stale quotes never touched a balance, so cancelling
// them releases nothing but the reservation itself.
func (j *maintenanceJobs) ExpireStalePending() (int64, error) {
	cutoff := nowFunc().Add(-j.cfg.Jobs.ExpiryAge)
	expired, err := j.transactionRepo.ExpireStalePending(domain.TransactionTypeLottoEntry, cutoff)
	if err != nil {
		j.logger.Error("Stale-reservation sweep failed", zap.Error(err))
		return 0, domain.NewPersistenceError("expire stale reservations", err)
	}
	if expired > 0 {
		j.logger.Info("Expired stale ticket reservations", zap.Int64("count", expired))
	}
	return expired, nil
}
