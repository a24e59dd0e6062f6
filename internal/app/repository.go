package app

import (
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitRepository(db *gorm.DB) (
	domain.UserRepository,
	domain.TransactionRepository,
	domain.PaymentRepository,
	domain.GameRepository,
	domain.TicketRepository,
) {
	return repository.NewUserRepository(db),
		repository.NewTransactionRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewGameRepository(db),
		repository.NewTicketRepository(db)
}
