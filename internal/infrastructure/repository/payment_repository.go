package repository

import (
	"errors"
	"time"

	"github.com/pboachie/pi-lotto/internal/domain"

	"gorm.io/gorm"
)

// PaymentRepository implements domain.PaymentRepository
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domain.PaymentRepository {
	return &PaymentRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *PaymentRepository) WithTransaction(tx *gorm.DB) domain.PaymentRepository {
	return &PaymentRepository{db: tx}
}

// Create creates a payment receipt
func (r *PaymentRepository) Create(payment *domain.Payment) error {
	payment.CreatedAt = time.Now()
	err := r.db.Create(payment).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.NewAppError(domain.ErrCodeDuplicateKey, "Payment receipt already exists", 409, err)
	}
	return err
}

// GetByID retrieves a payment receipt by ID
func (r *PaymentRepository) GetByID(id string) (*domain.Payment, error) {
	var payment domain.Payment
	result := r.db.Where("id = ?", id).First(&payment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &payment, nil
}

