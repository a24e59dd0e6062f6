package app

import (
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/infrastructure/auth"
	"github.com/pboachie/pi-lotto/internal/infrastructure/lock"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"github.com/pboachie/pi-lotto/internal/usecase/ledger"
	"github.com/pboachie/pi-lotto/internal/usecase/settlement"
	"github.com/pboachie/pi-lotto/internal/usecase/user"
	"gorm.io/gorm"
)

func (a *application) InitTransactionEngine(
	tr domain.TransactionRepository,
	ur domain.UserRepository,
	pr domain.PaymentRepository,
	db *gorm.DB,
	log *logger.Logger,
) domain.TransactionEngine {
	return ledger.NewEngine(tr, ur, pr, db, log)
}

func (a *application) InitUserUseCase(ur domain.UserRepository, ps domain.PaymentService, jwt auth.JWTService, log *logger.Logger) domain.UserUseCase {
	return user.NewUserUseCase(ur, ps, jwt, log)
}

func (a *application) InitSettlementUseCase(
	engine domain.TransactionEngine,
	tr domain.TransactionRepository,
	ur domain.UserRepository,
	gr domain.GameRepository,
	tkr domain.TicketRepository,
	ps domain.PaymentService,
	lm *lock.UserLockManager,
	db *gorm.DB,
	log *logger.Logger,
) domain.SettlementUseCase {
	return settlement.NewSettlementUseCase(engine, tr, ur, gr, tkr, ps, lm, db, a.config, log)
}
