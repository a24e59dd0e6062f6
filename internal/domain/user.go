package domain

import (
	"time"

	"gorm.io/gorm"
)

// User represents a player in the system
type User struct {
	ID        uint      `json:"user_id" gorm:"primaryKey;column:id"`
	UID       string    `json:"uid" gorm:"uniqueIndex;not null;type:varchar(36)"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;type:varchar(100)"`
	Balance   float64   `json:"balance" gorm:"type:numeric(20,7);not null;default:0"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// UserScope represents a permission scope granted to a user by the
// identity provider. Scopes are synced on every sign-in: granted scopes
// are activated, revoked ones deactivated, rows are never deleted.
type UserScope struct {
	ID        uint      `json:"id" gorm:"primaryKey;column:id"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Scope     string    `json:"scope" gorm:"type:varchar(20);not null"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for UserScope
func (s UserScope) TableName() string {
	return "user_scopes"
}

// ScopePayments gates the payment webhook endpoints
const ScopePayments = "payments"

// AuthResult is the payload handed back by the external identity provider
// after a successful client-side authentication.
type AuthResult struct {
	UID         string   `json:"uid"`
	Username    string   `json:"username"`
	Scopes      []string `json:"scopes"`
	AccessToken string   `json:"access_token"`
}

// TokenPair holds the locally issued access/refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserRepository defines the interface for user data
type UserRepository interface {
	GetByID(id uint) (*User, error)
	GetByUID(uid string) (*User, error)
	GetByUsername(username string) (*User, error)
	Create(user *User) error
	Update(user *User) error
	// AddBalance applies a signed delta to the stored balance as a single
	// atomic update and reports the number of rows touched. Only the
	// balance updater may call it.
	AddBalance(userID uint, delta float64) (int64, error)
	GetScopes(userID uint) ([]*UserScope, error)
	SaveScope(scope *UserScope) error
	WithTransaction(tx *gorm.DB) UserRepository
}

// UserUseCase defines the interface for user business logic
type UserUseCase interface {
	SignIn(result AuthResult) (*User, *TokenPair, error)
	GetUserInfo(uid string) (*User, error)
	GetBalance(uid string) (float64, error)
	HasActiveScope(userID uint, scope string) (bool, error)
}
