package app

import (
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/http/handlers"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
)

func (a *application) InitUserHandler(uc domain.UserUseCase, log *logger.Logger) *handlers.UserHandler {
	return handlers.NewUserHandler(uc, log)
}

func (a *application) InitPaymentHandler(sc domain.SettlementUseCase, log *logger.Logger) *handlers.PaymentHandler {
	return handlers.NewPaymentHandler(sc, log)
}

func (a *application) InitGameHandler(
	sc domain.SettlementUseCase,
	uc domain.UserUseCase,
	gr domain.GameRepository,
	tkr domain.TicketRepository,
	ps domain.PaymentService,
	log *logger.Logger,
) *handlers.GameHandler {
	return handlers.NewGameHandler(sc, uc, gr, tkr, ps, log)
}
