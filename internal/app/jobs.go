package app

import (
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"github.com/pboachie/pi-lotto/internal/jobs"
)

func (a *application) InitMaintenanceJobs(
	tr domain.TransactionRepository,
	gr domain.GameRepository,
	log *logger.Logger,
) domain.MaintenanceJobs {
	return jobs.NewMaintenanceJobs(tr, gr, a.config, log)
}

func (a *application) InitScheduler(mj domain.MaintenanceJobs, log *logger.Logger) *jobs.Scheduler {
	return jobs.NewScheduler(mj, a.config, log)
}
