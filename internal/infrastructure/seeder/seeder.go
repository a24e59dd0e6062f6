package seeder

import (
	"fmt"
	"time"

	"github.com/pboachie/pi-lotto/internal/domain"
	"gorm.io/gorm"
)

// Seeder populates the reference data a fresh deployment needs: game
// types, their configuration rows and one open game per type. Seeding is
// idempotent, existing rows are left alone.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

type gameTypeSeed struct {
	name        string
	description string
	entryFee    float64
	serviceFee  string
	maxPlayers  string
	numberRange string
}

var gameTypeSeeds = []gameTypeSeed{
	{
		name:        "Pi-Lotto",
		description: "Weekly Pi lottery drawing",
		entryFee:    2.0,
		serviceFee:  "0.0125",
		maxPlayers:  "0",
		numberRange: `{"main":[1,50],"power":[1,20]}`,
	},
	{
		name:        "Super-Pi-Lotto",
		description: "High stakes monthly drawing",
		entryFee:    10.0,
		serviceFee:  "0.0625",
		maxPlayers:  "500",
		numberRange: `{"main":[1,69],"power":[1,26]}`,
	},
}

// SeedGames creates the game types, configs and an open game for each type
func (s *Seeder) SeedGames() error {
	for _, seed := range gameTypeSeeds {
		gameType, err := s.ensureGameType(seed)
		if err != nil {
			return fmt.Errorf("seed game type %s: %w", seed.name, err)
		}
		if err := s.ensureConfigs(gameType.ID, seed); err != nil {
			return fmt.Errorf("seed configs for %s: %w", seed.name, err)
		}
		if err := s.ensureOpenGame(gameType.ID, seed); err != nil {
			return fmt.Errorf("seed game for %s: %w", seed.name, err)
		}
	}
	return nil
}

func (s *Seeder) ensureGameType(seed gameTypeSeed) (*domain.GameType, error) {
	var gameType domain.GameType
	err := s.db.Where("name = ?", seed.name).First(&gameType).Error
	if err == nil {
		return &gameType, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	gameType = domain.GameType{
		Name:        seed.name,
		Description: seed.description,
	}
	if err := s.db.Create(&gameType).Error; err != nil {
		return nil, err
	}
	return &gameType, nil
}

func (s *Seeder) ensureConfigs(gameTypeID uint, seed gameTypeSeed) error {
	configs := map[string]string{
		domain.ConfigKeyServiceFee:  seed.serviceFee,
		domain.ConfigKeyMaxPlayers:  seed.maxPlayers,
		domain.ConfigKeyNumberRange: seed.numberRange,
	}
	for key, value := range configs {
		var count int64
		if err := s.db.Model(&domain.GameConfig{}).
			Where("game_type_id = ? AND config_key = ? AND game_id IS NULL", gameTypeID, key).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := s.db.Create(&domain.GameConfig{
			GameTypeID:  gameTypeID,
			ConfigKey:   key,
			ConfigValue: value,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) ensureOpenGame(gameTypeID uint, seed gameTypeSeed) error {
	var count int64
	if err := s.db.Model(&domain.Game{}).
		Where("game_type_id = ? AND status = ?", gameTypeID, domain.GameStatusActive).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	game := domain.Game{
		GameTypeID: gameTypeID,
		Name:       fmt.Sprintf("%s %s", seed.name, time.Now().Format("2006-01")),
		EntryFee:   seed.entryFee,
		EndTime:    time.Now().AddDate(0, 0, 7),
		Status:     domain.GameStatusActive,
	}
	return s.db.Create(&game).Error
}
