package repository

import (
	"errors"
	"time"

	"github.com/pboachie/pi-lotto/internal/domain"

	"gorm.io/gorm"
)

// TransactionRepository implements domain.TransactionRepository
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domain.TransactionRepository {
	return &TransactionRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *TransactionRepository) WithTransaction(tx *gorm.DB) domain.TransactionRepository {
	return &TransactionRepository{db: tx}
}

// Create creates a new transaction. A primary-key collision surfaces as a
// DUPLICATE_KEY error so callers that supplied their own id can treat it
// as "already exists".
func (r *TransactionRepository) Create(transaction *domain.Transaction) error {
	transaction.CreatedAt = time.Now()
	transaction.UpdatedAt = time.Now()
	err := r.db.Create(transaction).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.NewAppError(domain.ErrCodeDuplicateKey, "Transaction already exists", 409, err)
	}
	return err
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(id string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	result := r.db.Where("id = ?", id).First(&transaction)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &transaction, nil
}

// GetByIDAndStatus retrieves a transaction by ID constrained to a status
func (r *TransactionRepository) GetByIDAndStatus(id string, status domain.TransactionStatus) (*domain.Transaction, error) {
	var transaction domain.Transaction
	result := r.db.Where("id = ? AND status = ?", id, status).First(&transaction)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &transaction, nil
}

// GetByUserID retrieves transactions for a user with pagination
func (r *TransactionRepository) GetByUserID(userID uint, limit, offset int) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions)

	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

// UpdateStatusGuarded performs the status-guarded conditional update that
// backs every state transition. Zero rows affected means the transaction
// is absent or already past the eligible states.
func (r *TransactionRepository) UpdateStatusGuarded(id string, from []domain.TransactionStatus, to domain.TransactionStatus, fields map[string]interface{}) (int64, error) {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	for k, v := range fields {
		updates[k] = v
	}

	result := r.db.Model(&domain.Transaction{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// SumCompletedByTypeForGame sums completed transactions of a type joined
// to tickets of the given game.
func (r *TransactionRepository) SumCompletedByTypeForGame(gameID uint, txType domain.TransactionType) (float64, error) {
	var total float64
	err := r.db.Model(&domain.Transaction{}).
		Select("COALESCE(SUM(transactions.amount), 0)").
		Joins("JOIN tickets ON tickets.transaction_id = transactions.id").
		Where("tickets.game_id = ? AND transactions.transaction_type = ? AND transactions.status = ?",
			gameID, txType, domain.TransactionStatusCompleted).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ExpireStalePending bulk-cancels pending transactions of a type created
// before the cutoff. The status guard keeps the sweep safe to run
// concurrently with request traffic.
func (r *TransactionRepository) ExpireStalePending(txType domain.TransactionType, olderThan time.Time) (int64, error) {
	result := r.db.Model(&domain.Transaction{}).
		Where("transaction_type = ? AND status = ? AND created_at <= ?",
			txType, domain.TransactionStatusPending, olderThan).
		Updates(map[string]interface{}{
			"status":     domain.TransactionStatusCancelled,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// CreateData attaches the payload row for a transaction
func (r *TransactionRepository) CreateData(data *domain.TransactionData) error {
	data.CreatedAt = time.Now()
	data.UpdatedAt = time.Now()
	return r.db.Create(data).Error
}

// GetData retrieves the payload row for a transaction
func (r *TransactionRepository) GetData(transactionID string) (*domain.TransactionData, error) {
	var data domain.TransactionData
	result := r.db.Where("transaction_id = ?", transactionID).First(&data)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &data, nil
}

// AppendLog writes an audit entry for a transaction
func (r *TransactionRepository) AppendLog(transactionID, message string) error {
	entry := &domain.TransactionLog{
		TransactionID: transactionID,
		LogMessage:    message,
		LogTimestamp:  time.Now(),
	}
	return r.db.Create(entry).Error
}
