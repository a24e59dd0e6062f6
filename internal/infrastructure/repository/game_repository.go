package repository

import (
	"errors"
	"time"

	"github.com/pboachie/pi-lotto/internal/domain"

	"gorm.io/gorm"
)

// GameRepository implements domain.GameRepository
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) domain.GameRepository {
	return &GameRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *GameRepository) WithTransaction(tx *gorm.DB) domain.GameRepository {
	return &GameRepository{db: tx}
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(id uint) (*domain.Game, error) {
	var game domain.Game
	result := r.db.Where("id = ?", id).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// GetActive retrieves all active games
func (r *GameRepository) GetActive() ([]*domain.Game, error) {
	var games []*domain.Game
	result := r.db.Where("status = ?", domain.GameStatusActive).Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}
	return games, nil
}

// List retrieves games, optionally filtered by game-type name
func (r *GameRepository) List(gameTypeName string) ([]*domain.Game, error) {
	var games []*domain.Game
	query := r.db
	if gameTypeName != "" {
		query = query.Joins("JOIN game_types ON game_types.id = games.game_type_id").
			Where("game_types.name = ?", gameTypeName)
	}
	result := query.Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}
	return games, nil
}

// GetTypeByID retrieves a game type by ID
func (r *GameRepository) GetTypeByID(id uint) (*domain.GameType, error) {
	var gameType domain.GameType
	result := r.db.Where("id = ?", id).First(&gameType)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &gameType, nil
}

// ListTypes retrieves all game types
func (r *GameRepository) ListTypes() ([]*domain.GameType, error) {
	var gameTypes []*domain.GameType
	result := r.db.Find(&gameTypes)
	if result.Error != nil {
		return nil, result.Error
	}
	return gameTypes, nil
}

// GetConfigs retrieves the merged key/value configuration for a game
func (r *GameRepository) GetConfigs(gameID uint) (map[string]string, error) {
	var configs []*domain.GameConfig
	result := r.db.Where("game_id = ?", gameID).Find(&configs)
	if result.Error != nil {
		return nil, result.Error
	}

	merged := make(map[string]string, len(configs))
	for _, cfg := range configs {
		merged[cfg.ConfigKey] = cfg.ConfigValue
	}
	return merged, nil
}

// UpdatePoolAmount writes the recomputed pool cache for a game
func (r *GameRepository) UpdatePoolAmount(gameID uint, amount float64) error {
	return r.db.Model(&domain.Game{}).
		Where("id = ?", gameID).
		Updates(map[string]interface{}{
			"pool_amount": amount,
			"updated_at":  time.Now(),
		}).Error
}
