package ledger

import (
	"github.com/pboachie/pi-lotto/internal/domain"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Engine implements domain.TransactionEngine. Every transition runs inside
// one database transaction and every status change goes through a guarded
// conditional update, so replays and concurrent calls settle exactly once.
type Engine struct {
	transactionRepo domain.TransactionRepository
	userRepo        domain.UserRepository
	paymentRepo     domain.PaymentRepository
	txm             txManager
	logger          *logger.Logger
}

// NewEngine creates a new transaction engine
func NewEngine(
	transactionRepo domain.TransactionRepository,
	userRepo domain.UserRepository,
	paymentRepo domain.PaymentRepository,
	db *gorm.DB,
	logger *logger.Logger,
) domain.TransactionEngine {
	logger.Info("TransactionEngine initialized successfully")
	return &Engine{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		paymentRepo:     paymentRepo,
		txm:             gormTxManager{db: db},
		logger:          logger,
	}
}

// Create persists a new pending transaction with its optional payload and
// creation log entry, atomically. When the caller supplied its own id and
// that id already exists, the stored transaction is returned as-is; the id
// is the idempotency key.
func (e *Engine) Create(input domain.CreateTransactionInput) (*domain.Transaction, error) {
	if err := e.validateCreateInput(input); err != nil {
		return nil, err
	}

	id := input.ID
	callerSuppliedID := id != ""
	if !callerSuppliedID {
		id = e.generateTransactionID()
	}

	e.logger.Info("Creating transaction",
		zap.String("transactionID", id),
		zap.Uint("userID", input.UserID),
		zap.String("type", string(input.TransactionType)),
		zap.Float64("amount", input.Amount))

	tx, txTransactionRepo, err := e.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	transaction := &domain.Transaction{
		ID:              id,
		UserID:          input.UserID,
		Amount:          input.Amount,
		TransactionType: input.TransactionType,
		Status:          domain.TransactionStatusPending,
		Memo:            input.Memo,
	}

	if err := txTransactionRepo.Create(transaction); err != nil {
		e.txm.Rollback(tx)
		if appErr, ok := domain.IsAppError(err); ok && appErr.Code == domain.ErrCodeDuplicateKey && callerSuppliedID {
			e.logger.Warn("Transaction id already exists, returning stored transaction",
				zap.String("transactionID", id))
			return e.transactionRepo.GetByID(id)
		}
		e.logger.Error("Failed to create transaction",
			zap.String("transactionID", id),
			zap.Uint("userID", input.UserID),
			zap.Float64("amount", input.Amount),
			zap.Error(err))
		return nil, domain.NewPersistenceError("create transaction", err)
	}

	if input.Payload != nil {
		if err := e.attachPayload(txTransactionRepo, id, input.Payload); err != nil {
			e.txm.Rollback(tx)
			return nil, err
		}
	}

	if err := txTransactionRepo.AppendLog(id, "Transaction created: "+id); err != nil {
		e.txm.Rollback(tx)
		return nil, domain.NewPersistenceError("append transaction log", err)
	}

	if err := e.commitTransaction(tx); err != nil {
		return nil, err
	}

	e.logger.Info("Transaction created successfully", zap.String("transactionID", id))
	return transaction, nil
}

// Approve moves a pending transaction to approved, recording the provider
// reference. Used when the payment provider acknowledges a request before
// final settlement.
func (e *Engine) Approve(id string, providerReference string) (*domain.Transaction, error) {
	e.logger.Info("Approving transaction",
		zap.String("transactionID", id),
		zap.String("providerReference", providerReference))

	tx, txTransactionRepo, err := e.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	rows, err := txTransactionRepo.UpdateStatusGuarded(
		id,
		[]domain.TransactionStatus{domain.TransactionStatusPending},
		domain.TransactionStatusApproved,
		map[string]interface{}{"reference_id": providerReference},
	)
	if err != nil {
		e.txm.Rollback(tx)
		return nil, domain.NewPersistenceError("approve transaction", err)
	}
	if rows == 0 {
		e.txm.Rollback(tx)
		return nil, e.ineligibleTransitionError(id, "approved")
	}

	if err := txTransactionRepo.AppendLog(id, "Transaction approved: "+id); err != nil {
		e.txm.Rollback(tx)
		return nil, domain.NewPersistenceError("append transaction log", err)
	}

	if err := e.commitTransaction(tx); err != nil {
		return nil, err
	}

	e.logger.Info("Transaction approved successfully", zap.String("transactionID", id))
	return e.transactionRepo.GetByID(id)
}

// Complete settles a transaction from pending or approved: it records the
// provider txid, creates the payment receipt, appends the audit entry and
// applies the balance delta, all in one database transaction. A replay
// against an already-settled transaction returns ALREADY_SETTLED and moves
// no money; callers treat that as non-fatal.
func (e *Engine) Complete(id string, providerTxID string) (*domain.Transaction, error) {
	e.logger.Info("Completing transaction",
		zap.String("transactionID", id),
		zap.String("providerTxID", providerTxID))

	tx, txTransactionRepo, err := e.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	rows, err := txTransactionRepo.UpdateStatusGuarded(
		id,
		[]domain.TransactionStatus{domain.TransactionStatusPending, domain.TransactionStatusApproved},
		domain.TransactionStatusCompleted,
		map[string]interface{}{"provider_tx_id": providerTxID},
	)
	if err != nil {
		e.txm.Rollback(tx)
		return nil, domain.NewPersistenceError("complete transaction", err)
	}
	if rows == 0 {
		e.txm.Rollback(tx)
		if existing, lookupErr := e.transactionRepo.GetByID(id); lookupErr == nil && existing == nil {
			return nil, domain.NewNotFoundError("Transaction")
		}
		e.logger.Warn("Complete replayed on settled transaction, no-op",
			zap.String("transactionID", id))
		return nil, domain.NewAlreadySettledError(id)
	}

	transaction, err := txTransactionRepo.GetByID(id)
	if err != nil || transaction == nil {
		e.txm.Rollback(tx)
		return nil, domain.NewPersistenceError("load completed transaction", err)
	}

	txPaymentRepo := e.paymentRepo.WithTransaction(tx)
	payment := &domain.Payment{
		ID:           transaction.ID,
		UserID:       transaction.UserID,
		Amount:       transaction.Amount,
		Memo:         transaction.Memo,
		ProviderTxID: providerTxID,
		Status:       string(domain.TransactionStatusCompleted),
	}
	if err := txPaymentRepo.Create(payment); err != nil {
		e.txm.Rollback(tx)
		e.logger.Error("Failed to create payment receipt",
			zap.String("transactionID", id),
			zap.Uint("userID", transaction.UserID),
			zap.Float64("amount", transaction.Amount),
			zap.Error(err))
		return nil, domain.NewPersistenceError("create payment receipt", err)
	}

	if err := txTransactionRepo.AppendLog(id, "Transaction completed: "+id); err != nil {
		e.txm.Rollback(tx)
		return nil, domain.NewPersistenceError("append transaction log", err)
	}

	if err := e.applyBalance(e.userRepo.WithTransaction(tx), transaction.UserID, transaction.Amount, transaction.TransactionType); err != nil {
		e.txm.Rollback(tx)
		e.logger.Error("Failed to apply balance for completed transaction",
			zap.String("transactionID", id),
			zap.Uint("userID", transaction.UserID),
			zap.Float64("amount", transaction.Amount),
			zap.Error(err))
		return nil, err
	}

	if err := e.commitTransaction(tx); err != nil {
		return nil, err
	}

	e.logger.Info("Transaction completed successfully",
		zap.String("transactionID", id),
		zap.String("providerTxID", providerTxID))
	return transaction, nil
}

// Cancel terminates a pending or approved transaction with no balance
// effect.
func (e *Engine) Cancel(id string) (*domain.Transaction, error) {
	e.logger.Info("Cancelling transaction", zap.String("transactionID", id))

	tx, txTransactionRepo, err := e.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	rows, err := txTransactionRepo.UpdateStatusGuarded(
		id,
		[]domain.TransactionStatus{domain.TransactionStatusPending, domain.TransactionStatusApproved},
		domain.TransactionStatusCancelled,
		nil,
	)
	if err != nil {
		e.txm.Rollback(tx)
		return nil, domain.NewPersistenceError("cancel transaction", err)
	}
	if rows == 0 {
		e.txm.Rollback(tx)
		return nil, e.ineligibleTransitionError(id, "cancelled")
	}

	if err := txTransactionRepo.AppendLog(id, "Transaction cancelled: "+id); err != nil {
		e.txm.Rollback(tx)
		return nil, domain.NewPersistenceError("append transaction log", err)
	}

	if err := e.commitTransaction(tx); err != nil {
		return nil, err
	}

	e.logger.Info("Transaction cancelled successfully", zap.String("transactionID", id))
	return e.transactionRepo.GetByID(id)
}
