package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeDeposit       TransactionType = "deposit"
	TransactionTypeWithdrawal    TransactionType = "withdrawal"
	TransactionTypeLottoEntry    TransactionType = "lotto_entry"
	TransactionTypeGameEntry     TransactionType = "game_entry"
	TransactionTypeGameWinnings  TransactionType = "game_winnings"
	TransactionTypeLottoWinnings TransactionType = "lotto_winnings"
)

// IsCredit reports whether the type increases the user balance on completion
func (t TransactionType) IsCredit() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeGameWinnings, TransactionTypeLottoWinnings:
		return true
	}
	return false
}

// IsDebit reports whether the type decreases the user balance on completion
func (t TransactionType) IsDebit() bool {
	switch t {
	case TransactionTypeWithdrawal, TransactionTypeGameEntry, TransactionTypeLottoEntry:
		return true
	}
	return false
}

// TransactionStatus represents the status of a transaction
type TransactionStatus string

const (
	// TransactionStatusPending transaction created, awaiting provider acknowledgement
	TransactionStatusPending TransactionStatus = "pending"

	// TransactionStatusApproved provider acknowledged the request, settlement outstanding
	TransactionStatusApproved TransactionStatus = "approved"

	// TransactionStatusCompleted settled; the balance has been applied exactly once
	TransactionStatusCompleted TransactionStatus = "completed"

	// TransactionStatusCancelled terminated without any balance effect
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Transaction is the ledger's unit of work. The ID doubles as the
// idempotency key: callers that supply their own ID can safely retry
// creation, and completion is guarded so the balance applies at most once.
type Transaction struct {
	ID              string            `json:"transaction_id" gorm:"primaryKey;column:id;type:varchar(100)"`
	UserID          uint              `json:"user_id" gorm:"index;not null"`
	Amount          float64           `json:"amount" gorm:"type:numeric(20,7);not null"`
	TransactionType TransactionType   `json:"transaction_type" gorm:"type:varchar(20);not null"`
	Status          TransactionStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ReferenceID     *string           `json:"reference_id,omitempty" gorm:"type:varchar(100)"`
	ProviderTxID    *string           `json:"provider_tx_id,omitempty" gorm:"column:provider_tx_id;type:varchar(100)"`
	Memo            string            `json:"memo" gorm:"type:varchar(100);not null"`
	CreatedAt       time.Time         `json:"created_at" gorm:"not null"`
	UpdatedAt       time.Time         `json:"updated_at" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for Transaction
func (t Transaction) TableName() string {
	return "transactions"
}

// TransactionData holds the provider request envelope attached to a
// transaction at creation time. At most one row per transaction; a second
// attach attempt is logged and discarded, never an error.
type TransactionData struct {
	ID            uint           `json:"id" gorm:"primaryKey;column:id"`
	TransactionID string         `json:"transaction_id" gorm:"uniqueIndex;not null;type:varchar(100)"`
	Data          datatypes.JSON `json:"data" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for TransactionData
func (d TransactionData) TableName() string {
	return "transaction_data"
}

// TransactionLog is an append-only audit entry; never mutated or deleted
type TransactionLog struct {
	ID            uint      `json:"id" gorm:"primaryKey;column:id"`
	TransactionID string    `json:"transaction_id" gorm:"index;not null;type:varchar(100)"`
	LogMessage    string    `json:"log_message" gorm:"type:varchar(255);not null"`
	LogTimestamp  time.Time `json:"log_timestamp" gorm:"not null"`
}

// TableName specifies the table name for TransactionLog
func (l TransactionLog) TableName() string {
	return "transaction_logs"
}

// Payment is the receipt row created exactly once when a transaction
// completes, carrying the provider's confirmed txid.
type Payment struct {
	ID           string    `json:"id" gorm:"primaryKey;column:id;type:varchar(100)"`
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	Amount       float64   `json:"amount" gorm:"type:numeric(20,7);not null"`
	Memo         string    `json:"memo" gorm:"type:varchar(100);not null"`
	ProviderTxID string    `json:"provider_tx_id" gorm:"column:provider_tx_id;type:varchar(100);not null"`
	Status       string    `json:"status" gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for Payment
func (p Payment) TableName() string {
	return "payments"
}

// TransactionRepository defines the interface for ledger persistence
type TransactionRepository interface {
	Create(transaction *Transaction) error
	GetByID(id string) (*Transaction, error)
	GetByIDAndStatus(id string, status TransactionStatus) (*Transaction, error)
	GetByUserID(userID uint, limit, offset int) ([]*Transaction, error)
	// UpdateStatusGuarded transitions id from one of the given statuses to
	// the target status, applying extra column updates atomically. The
	// returned count is zero when the row is absent or already past the
	// eligible states; callers use that as replay protection.
	UpdateStatusGuarded(id string, from []TransactionStatus, to TransactionStatus, fields map[string]interface{}) (int64, error)
	// SumCompletedByTypeForGame sums completed transactions of the given
	// type whose owning ticket references the game.
	SumCompletedByTypeForGame(gameID uint, txType TransactionType) (float64, error)
	// ExpireStalePending cancels pending transactions of the given type
	// created before the cutoff, returning the number cancelled.
	ExpireStalePending(txType TransactionType, olderThan time.Time) (int64, error)
	CreateData(data *TransactionData) error
	GetData(transactionID string) (*TransactionData, error)
	AppendLog(transactionID, message string) error
	WithTransaction(tx *gorm.DB) TransactionRepository
}

// PaymentRepository defines the interface for payment receipts
type PaymentRepository interface {
	Create(payment *Payment) error
	GetByID(id string) (*Payment, error)
	WithTransaction(tx *gorm.DB) PaymentRepository
}

// CreateTransactionInput carries the parameters for TransactionEngine.Create
type CreateTransactionInput struct {
	UserID          uint
	Amount          float64
	TransactionType TransactionType
	Memo            string
	// ID is optional; when empty a fresh idempotency key is generated
	ID string
	// Payload, when non-nil, is stored as the transaction's TransactionData
	Payload map[string]interface{}
}

// TransactionEngine orchestrates the transaction state machine:
//
//	pending --approve--> approved --complete--> completed
//	pending --cancel---> cancelled
//	approved --cancel--> cancelled
//
// Completion applies the balance exactly once; replaying Complete on a
// settled transaction is reported as already settled, never double-applied.
type TransactionEngine interface {
	Create(input CreateTransactionInput) (*Transaction, error)
	Approve(id string, providerReference string) (*Transaction, error)
	Complete(id string, providerTxID string) (*Transaction, error)
	Cancel(id string) (*Transaction, error)
}
