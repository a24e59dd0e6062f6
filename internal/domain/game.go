package domain

import (
	"time"

	"gorm.io/gorm"
)

// GameStatus values for Game.Status
const (
	GameStatusActive   = "active"
	GameStatusEnded    = "ended"
	GameStatusInactive = "inactive"
)

// Game represents a single lottery drawing that users buy tickets into.
// PoolAmount is a derived cache recomputed by the pool aggregation job;
// the source of truth is the sum of completed entry-fee transactions.
type Game struct {
	ID         uint      `json:"id" gorm:"primaryKey;column:id"`
	GameTypeID uint      `json:"game_type_id" gorm:"index;not null"`
	Name       string    `json:"name" gorm:"type:varchar(100);not null"`
	PoolAmount float64   `json:"pool_amount" gorm:"type:numeric(20,7);not null;default:0"`
	EntryFee   float64   `json:"entry_fee" gorm:"type:numeric(20,7);not null;default:0"`
	EndTime    time.Time `json:"end_time" gorm:"not null"`
	Status     string    `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	WinnerID   *uint     `json:"winner_id,omitempty"`
	MaxPlayers int       `json:"max_players" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Game
func (g Game) TableName() string {
	return "games"
}

// GameType categorizes games (e.g. Pi-Lotto, Super-Pi-Lotto)
type GameType struct {
	ID          uint      `json:"id" gorm:"primaryKey;column:id"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null;type:varchar(100)"`
	Description string    `json:"description" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for GameType
func (t GameType) TableName() string {
	return "game_types"
}

// GameConfig is a keyed configuration row scoped to a game or a game type
type GameConfig struct {
	ID          uint      `json:"id" gorm:"primaryKey;column:id"`
	GameID      *uint     `json:"game_id,omitempty" gorm:"index"`
	GameTypeID  uint      `json:"game_type_id" gorm:"index;not null"`
	ConfigKey   string    `json:"config_key" gorm:"type:varchar(100);not null"`
	ConfigValue string    `json:"config_value" gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for GameConfig
func (c GameConfig) TableName() string {
	return "game_configs"
}

// Well-known GameConfig keys
const (
	ConfigKeyEntryFee    = "entry_fee"
	ConfigKeyServiceFee  = "service_fee"
	ConfigKeyMaxPlayers  = "max_players"
	ConfigKeyNumberRange = "number_range"
)

// NumberRange holds the configured bounds for played numbers. Main covers
// the five regular numbers, Power the single power number.
type NumberRange struct {
	Main  [2]int `json:"main"`
	Power [2]int `json:"power"`
}

// Ticket is one purchased entry, tied to the transaction that paid for it.
// A ticket must never exist without a corresponding completed debit.
type Ticket struct {
	ID            uint      `json:"id" gorm:"primaryKey;column:id"`
	UserID        uint      `json:"user_id" gorm:"index;not null"`
	GameID        uint      `json:"game_id" gorm:"index;not null"`
	TransactionID string    `json:"transaction_id" gorm:"index;not null;type:varchar(100)"`
	NumbersPlayed string    `json:"numbers_played" gorm:"type:varchar(100);not null"`
	PowerNumber   int       `json:"power_number" gorm:"not null"`
	DatePurchased time.Time `json:"date_purchased" gorm:"not null"`
}

// TableName specifies the table name for Ticket
func (t Ticket) TableName() string {
	return "tickets"
}

// LottoStats is the denormalized per-user-per-game projection kept in sync
// with ticket writes by the settlement workflow.
type LottoStats struct {
	ID            uint    `json:"id" gorm:"primaryKey;column:id"`
	UserID        uint    `json:"user_id" gorm:"index;not null"`
	GameID        uint    `json:"game_id" gorm:"index;not null"`
	NumbersPlayed string  `json:"numbers_played" gorm:"type:varchar(100);not null"`
	WinAmount     float64 `json:"win_amount" gorm:"type:numeric(20,7);not null;default:0"`
	PrizeClaimed  bool    `json:"prize_claimed" gorm:"not null;default:false"`
}

// TableName specifies the table name for LottoStats
func (s LottoStats) TableName() string {
	return "lotto_stats"
}

// GameRepository defines the interface for game metadata reads and the
// pool-amount cache write owned by the aggregation job.
type GameRepository interface {
	GetByID(id uint) (*Game, error)
	GetActive() ([]*Game, error)
	List(gameTypeName string) ([]*Game, error)
	GetTypeByID(id uint) (*GameType, error)
	ListTypes() ([]*GameType, error)
	GetConfigs(gameID uint) (map[string]string, error)
	UpdatePoolAmount(gameID uint, amount float64) error
	WithTransaction(tx *gorm.DB) GameRepository
}

// TicketRepository defines the interface for tickets and their stats rows
type TicketRepository interface {
	Create(ticket *Ticket) error
	Delete(ticketID uint) error
	GetByTransactionID(transactionID string) (*Ticket, error)
	GetByUserID(userID uint) ([]*Ticket, error)
	CountByGameID(gameID uint) (int64, error)
	CreateStats(stats *LottoStats) error
	DeleteStats(statsID uint) error
	GetStats(userID, gameID uint) (*LottoStats, error)
	WithTransaction(tx *gorm.DB) TicketRepository
}
