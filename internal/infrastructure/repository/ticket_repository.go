package repository

import (
	"errors"
	"time"

	"github.com/pboachie/pi-lotto/internal/domain"

	"gorm.io/gorm"
)

// TicketRepository implements domain.TicketRepository
type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) domain.TicketRepository {
	return &TicketRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *TicketRepository) WithTransaction(tx *gorm.DB) domain.TicketRepository {
	return &TicketRepository{db: tx}
}

// Create creates a new ticket
func (r *TicketRepository) Create(ticket *domain.Ticket) error {
	ticket.DatePurchased = time.Now()
	return r.db.Create(ticket).Error
}

// Delete removes a ticket. Used only by purchase compensation.
func (r *TicketRepository) Delete(ticketID uint) error {
	return r.db.Delete(&domain.Ticket{}, ticketID).Error
}

// GetByTransactionID retrieves the ticket owned by a transaction
func (r *TicketRepository) GetByTransactionID(transactionID string) (*domain.Ticket, error) {
	var ticket domain.Ticket
	result := r.db.Where("transaction_id = ?", transactionID).First(&ticket)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &ticket, nil
}

// GetByUserID retrieves all tickets owned by a user
func (r *TicketRepository) GetByUserID(userID uint) ([]*domain.Ticket, error) {
	var tickets []*domain.Ticket
	result := r.db.Where("user_id = ?", userID).Order("date_purchased DESC").Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}
	return tickets, nil
}

// CountByGameID counts tickets sold for a game
func (r *TicketRepository) CountByGameID(gameID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Ticket{}).Where("game_id = ?", gameID).Count(&count).Error
	return count, err
}

// CreateStats inserts the LottoStats projection row for a ticket
func (r *TicketRepository) CreateStats(stats *domain.LottoStats) error {
	return r.db.Create(stats).Error
}

// DeleteStats removes a single projection row by primary key. Used only by
// purchase compensation; rows from earlier successful purchases stay intact.
func (r *TicketRepository) DeleteStats(statsID uint) error {
	return r.db.Delete(&domain.LottoStats{}, statsID).Error
}

// GetStats retrieves the projection row for a user and game
func (r *TicketRepository) GetStats(userID, gameID uint) (*domain.LottoStats, error) {
	var stats domain.LottoStats
	result := r.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&stats)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &stats, nil
}
