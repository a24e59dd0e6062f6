package ledger

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pboachie/pi-lotto/internal/domain"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// txManager starts and finishes the database transaction each engine
// transition runs inside.
type txManager interface {
	Begin() (*gorm.DB, error)
	Commit(tx *gorm.DB) error
	Rollback(tx *gorm.DB)
}

type gormTxManager struct {
	db *gorm.DB
}

func (g gormTxManager) Begin() (*gorm.DB, error) {
	tx := g.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

func (g gormTxManager) Commit(tx *gorm.DB) error {
	return tx.Commit().Error
}

func (g gormTxManager) Rollback(tx *gorm.DB) {
	tx.Rollback()
}

// setupTransactionDB starts a database transaction and binds the
// transaction repository to it
func (e *Engine) setupTransactionDB() (*gorm.DB, domain.TransactionRepository, error) {
	tx, err := e.txm.Begin()
	if err != nil {
		e.logger.Error("Failed to start database transaction", zap.Error(err))
		return nil, nil, domain.NewPersistenceError("begin transaction", err)
	}
	return tx, e.transactionRepo.WithTransaction(tx), nil
}

func (e *Engine) commitTransaction(tx *gorm.DB) error {
	if err := e.txm.Commit(tx); err != nil {
		e.logger.Error("Failed to commit database transaction", zap.Error(err))
		return domain.NewPersistenceError("commit transaction", err)
	}
	return nil
}

func (e *Engine) generateTransactionID() string {
	return uuid.New().String()
}

func (e *Engine) validateCreateInput(input domain.CreateTransactionInput) error {
	if input.Amount <= 0 {
		return domain.NewInvalidAmountError("Transaction amount must be positive")
	}
	if !input.TransactionType.IsCredit() && !input.TransactionType.IsDebit() {
		return domain.NewInvalidTransactionTypeError(string(input.TransactionType))
	}
	return nil
}

// attachPayload stores the transaction payload. A payload can only be
// attached once; a second attach for the same transaction is logged and
// discarded, the stored payload wins.
func (e *Engine) attachPayload(repo domain.TransactionRepository, transactionID string, payload map[string]interface{}) error {
	existing, err := repo.GetData(transactionID)
	if err != nil {
		return domain.NewPersistenceError("load transaction data", err)
	}
	if existing != nil {
		e.logger.Warn("Transaction data already attached, discarding new payload",
			zap.String("transactionID", transactionID))
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return domain.NewValidationError("payload", "cannot be serialized")
	}

	data := &domain.TransactionData{
		TransactionID: transactionID,
		Data:          datatypes.JSON(raw),
	}
	if err := repo.CreateData(data); err != nil {
		return domain.NewPersistenceError("create transaction data", err)
	}
	return nil
}

// ineligibleTransitionError distinguishes a missing transaction from one
// that is no longer in an eligible status for the requested transition.
func (e *Engine) ineligibleTransitionError(id string, target string) error {
	existing, err := e.transactionRepo.GetByID(id)
	if err != nil {
		return domain.NewPersistenceError("load transaction", err)
	}
	if existing == nil {
		return domain.NewNotFoundError("Transaction")
	}
	e.logger.Warn("Transaction not eligible for transition",
		zap.String("transactionID", id),
		zap.String("currentStatus", string(existing.Status)),
		zap.String("target", target))
	return domain.NewInvalidStateError("transaction cannot be " + target + " from status " + string(existing.Status))
}
