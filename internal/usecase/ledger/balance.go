package ledger

import (
	"github.com/pboachie/pi-lotto/internal/domain"
	"go.uber.org/zap"
)

// SignedAmount maps a transaction type and its positive stored amount onto
// the balance delta it produces: credits add, debits subtract. Unknown
// types are rejected rather than silently ignored.
func SignedAmount(amount float64, transactionType domain.TransactionType) (float64, error) {
	switch {
	case transactionType.IsCredit():
		return amount, nil
	case transactionType.IsDebit():
		return -amount, nil
	default:
		return 0, domain.NewInvalidTransactionTypeError(string(transactionType))
	}
}

// applyBalance mutates the user's balance with a single atomic SQL
// expression. It must run against a repository already bound to the
// enclosing database transaction so the mutation commits or rolls back
// with the status change.
func (e *Engine) applyBalance(userRepo domain.UserRepository, userID uint, amount float64, transactionType domain.TransactionType) error {
	delta, err := SignedAmount(amount, transactionType)
	if err != nil {
		return err
	}

	rows, err := userRepo.AddBalance(userID, delta)
	if err != nil {
		return domain.NewPersistenceError("apply balance", err)
	}
	if rows == 0 {
		return domain.NewNotFoundError("User")
	}

	e.logger.Info("Balance applied",
		zap.Uint("userID", userID),
		zap.Float64("delta", delta),
		zap.String("type", string(transactionType)))
	return nil
}
