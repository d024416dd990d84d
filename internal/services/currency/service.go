package currency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/common/random"
	accountRepo "github.com/KirkDiggler/pearl/internal/repositories/account"
	cooldownRepo "github.com/KirkDiggler/pearl/internal/repositories/cooldown"
)

// service implements the Service interface
type service struct {
	dailyMin      int64
	dailyMax      int64
	dailyCooldown time.Duration

	accountRepo  accountRepo.Repository
	cooldownRepo cooldownRepo.Repository
	randomizer   random.Randomizer
	clock        clock.Clock
	logger       *slog.Logger
}

// New creates a new currency service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.AccountRepo == nil {
		return nil, ErrNilAccountRepo
	}

	if cfg.CooldownRepo == nil {
		return nil, ErrNilCooldownRepo
	}

	if cfg.Randomizer == nil {
		return nil, ErrNilRandomizer
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	s := &service{
		dailyMin:      cfg.DailyMin,
		dailyMax:      cfg.DailyMax,
		dailyCooldown: cfg.DailyCooldown,
		accountRepo:   cfg.AccountRepo,
		cooldownRepo:  cfg.CooldownRepo,
		randomizer:    cfg.Randomizer,
		clock:         cfg.Clock,
		logger:        cfg.Logger,
	}

	if s.dailyMin == 0 && s.dailyMax == 0 {
		s.dailyMin = DefaultDailyMin
		s.dailyMax = DefaultDailyMax
	}
	if s.dailyMin <= 0 || s.dailyMin > s.dailyMax {
		return nil, ErrInvalidDailyRange
	}
	if s.dailyCooldown <= 0 {
		s.dailyCooldown = DefaultDailyCooldown
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s, nil
}

// Bank returns the member's balance
func (s *service) Bank(ctx context.Context, input *BankInput) (*BankOutput, error) {
	out, err := s.accountRepo.GetAccount(ctx, &accountRepo.GetAccountInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if out.Created {
		s.logger.InfoContext(ctx, "account opened", "user_id", input.UserID)
	}

	return &BankOutput{
		Balance: out.Account.Balance,
		Opened:  out.Created,
	}, nil
}

// Daily pays out between dailyMin and dailyMax once per cooldown
func (s *service) Daily(ctx context.Context, input *DailyInput) (*DailyOutput, error) {
	key := input.GuildID + ":" + input.UserID

	lock, err := s.cooldownRepo.Acquire(ctx, &cooldownRepo.AcquireInput{
		Bucket:   dailyBucket,
		Key:      key,
		Duration: s.dailyCooldown,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check daily cooldown: %w", err)
	}

	now := s.clock.Now()
	if !lock.Acquired {
		return nil, &CooldownError{
			RetryAfter: lock.RetryAfter,
			Until:      now.Add(lock.RetryAfter),
		}
	}

	recipient := input.RecipientID
	if recipient == "" {
		recipient = input.UserID
	}

	amount := s.dailyMin + int64(s.randomizer.Intn(int(s.dailyMax-s.dailyMin+1)))

	out, err := s.accountRepo.Deposit(ctx, &accountRepo.DepositInput{
		UserID: recipient,
		Amount: amount,
	})
	if err != nil {
		// give the claim back so the member can retry
		releaseErr := s.cooldownRepo.Release(ctx, &cooldownRepo.ReleaseInput{
			Bucket: dailyBucket,
			Key:    key,
		})
		if releaseErr != nil {
			s.logger.WarnContext(ctx, "failed to release daily cooldown",
				"user_id", input.UserID,
				"error", releaseErr,
			)
		}
		return nil, fmt.Errorf("failed to deposit daily payout: %w", err)
	}

	s.logger.InfoContext(ctx, "daily claimed",
		"guild_id", input.GuildID,
		"user_id", input.UserID,
		"recipient_id", recipient,
		"amount", amount,
	)

	return &DailyOutput{
		RecipientID: recipient,
		Amount:      amount,
		Balance:     out.Account.Balance,
		NextClaim:   now.Add(s.dailyCooldown),
	}, nil
}
