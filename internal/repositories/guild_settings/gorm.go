package guild_settings

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KirkDiggler/pearl/internal/models"
)

var ErrSettingsNotFound = errors.New("guild settings not found")

// Config holds configuration for the gorm settings repository
type Config struct {
	DB *gorm.DB
}

type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a new gorm-backed settings repository
func NewGorm(cfg *Config) (*gormRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	return &gormRepository{
		db: cfg.DB,
	}, nil
}

func (r *gormRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	settings := &models.GuildSettings{}
	err := r.db.WithContext(ctx).First(settings, "guild_id = ?", input.GuildID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &GetSettingsOutput{
		Settings: settings,
	}, nil
}

func (r *gormRepository) SaveSettings(ctx context.Context, input *SaveSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("settings cannot be nil")
	}

	if input.Settings.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"prefix", "updated_at"}),
	}).Create(input.Settings).Error
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

func (r *gormRepository) DeleteSettings(ctx context.Context, input *DeleteSettingsInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	err := r.db.WithContext(ctx).Delete(&models.GuildSettings{}, "guild_id = ?", input.GuildID).Error
	if err != nil {
		return fmt.Errorf("failed to delete settings: %w", err)
	}

	return nil
}
