package repository

import (
	"errors"
	"time"

	"github.com/pboachie/pi-lotto/internal/domain"

	"gorm.io/gorm"
)

// UserRepository implements domain.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *UserRepository) WithTransaction(tx *gorm.DB) domain.UserRepository {
	return &UserRepository{db: tx}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uint) (*domain.User, error) {
	var user domain.User
	result := r.db.Where("id = ?", id).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// GetByUID retrieves a user by the externally issued uid
func (r *UserRepository) GetByUID(uid string) (*domain.User, error) {
	var user domain.User
	result := r.db.Where("uid = ?", uid).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*domain.User, error) {
	var user domain.User
	result := r.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(user *domain.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

// Update updates an existing user
func (r *UserRepository) Update(user *domain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

// AddBalance applies a signed delta to the user's balance in one atomic
// update. It is the only write path for the balance column.
func (r *UserRepository) AddBalance(userID uint, delta float64) (int64, error) {
	result := r.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// GetScopes retrieves all scope rows for a user
func (r *UserRepository) GetScopes(userID uint) ([]*domain.UserScope, error) {
	var scopes []*domain.UserScope
	result := r.db.Where("user_id = ?", userID).Find(&scopes)
	if result.Error != nil {
		return nil, result.Error
	}
	return scopes, nil
}

// SaveScope inserts or updates a scope row
func (r *UserRepository) SaveScope(scope *domain.UserScope) error {
	if scope.ID == 0 {
		scope.CreatedAt = time.Now()
		return r.db.Create(scope).Error
	}
	return r.db.Save(scope).Error
}
