package account

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KirkDiggler/pearl/internal/models"
)

// Config holds configuration for the gorm account repository
type Config struct {
	DB *gorm.DB
}

type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a new gorm-backed account repository
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

func (r *gormRepository) GetAccount(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	account := &models.Account{}
	err := r.db.WithContext(ctx).First(account, "user_id = ?", input.UserID).Error
	if err == nil {
		return &GetAccountOutput{Account: account}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	account = &models.Account{UserID: input.UserID}
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &GetAccountOutput{
		Account: account,
		Created: true,
	}, nil
}

func (r *gormRepository) Deposit(ctx context.Context, input *DepositInput) (*DepositOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	account := &models.Account{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Account{UserID: input.UserID}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Account{}).
			Where("user_id = ?", input.UserID).
			UpdateColumn("balance", gorm.Expr("balance + ?", input.Amount)).Error; err != nil {
			return err
		}

		return tx.First(account, "user_id = ?", input.UserID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deposit: %w", err)
	}

	return &DepositOutput{
		Account: account,
	}, nil
}
