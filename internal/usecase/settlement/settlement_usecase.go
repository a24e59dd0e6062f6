package settlement

import (
	"github.com/pboachie/pi-lotto/internal/config"
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/infrastructure/lock"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"gorm.io/gorm"
)

// settlementUseCase implements domain.SettlementUseCase on top of the
// transaction engine. The engine owns the state machine and the balance;
// this layer owns the provider choreography and the lottery rules.
type settlementUseCase struct {
	engine          domain.TransactionEngine
	transactionRepo domain.TransactionRepository
	userRepo        domain.UserRepository
	gameRepo        domain.GameRepository
	ticketRepo      domain.TicketRepository
	paymentService  domain.PaymentService
	lockManager     *lock.UserLockManager
	db              *gorm.DB
	cfg             *config.Config
	logger          *logger.Logger
}

// NewSettlementUseCase creates a new settlement use case
func NewSettlementUseCase(
	engine domain.TransactionEngine,
	transactionRepo domain.TransactionRepository,
	userRepo domain.UserRepository,
	gameRepo domain.GameRepository,
	ticketRepo domain.TicketRepository,
	paymentService domain.PaymentService,
	lockManager *lock.UserLockManager,
	db *gorm.DB,
	cfg *config.Config,
	logger *logger.Logger,
) domain.SettlementUseCase {
	logger.Info("SettlementUseCase initialized successfully")
	return &settlementUseCase{
		engine:          engine,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		gameRepo:        gameRepo,
		ticketRepo:      ticketRepo,
		paymentService:  paymentService,
		lockManager:     lockManager,
		db:              db,
		cfg:             cfg,
		logger:          logger,
	}
}

// requireUser loads the user by uid or returns a typed not-found error
func (u *settlementUseCase) requireUser(uid string) (*domain.User, error) {
	user, err := u.userRepo.GetByUID(uid)
	if err != nil {
		return nil, domain.NewPersistenceError("load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User")
	}
	return user, nil
}

// requirePaymentScope verifies the user holds an active payments scope;
// webhook surfaces must not act for users that revoked the grant.
func (u *settlementUseCase) requirePaymentScope(userID uint) error {
	scopes, err := u.userRepo.GetScopes(userID)
	if err != nil {
		return domain.NewPersistenceError("load user scopes", err)
	}
	for _, s := range scopes {
		if s.Scope == domain.ScopePayments && s.Active {
			return nil
		}
	}
	return domain.NewUnauthorizedError("Payments scope not granted")
}

// requireOwnedTransaction loads the transaction and verifies ownership
func (u *settlementUseCase) requireOwnedTransaction(id string, userID uint) (*domain.Transaction, error) {
	transaction, err := u.transactionRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewPersistenceError("load transaction", err)
	}
	if transaction == nil {
		return nil, domain.NewNotFoundError("Transaction")
	}
	if transaction.UserID != userID {
		return nil, domain.NewUnauthorizedError("Transaction belongs to another user")
	}
	return transaction, nil
}
