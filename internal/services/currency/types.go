package currency

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/common/random"
	accountRepo "github.com/KirkDiggler/pearl/internal/repositories/account"
	cooldownRepo "github.com/KirkDiggler/pearl/internal/repositories/cooldown"
)

const (
	DefaultDailyMin      int64 = 20
	DefaultDailyMax      int64 = 50
	DefaultDailyCooldown       = 24 * time.Hour

	// dailyBucket namespaces the daily cooldown keys
	dailyBucket = "daily"
)

// Config holds configuration for the currency service
type Config struct {
	// DailyMin and DailyMax bound the daily payout, both inclusive
	DailyMin int64
	DailyMax int64

	// DailyCooldown is how often a member may claim the daily payout
	DailyCooldown time.Duration

	AccountRepo  accountRepo.Repository
	CooldownRepo cooldownRepo.Repository
	Randomizer   random.Randomizer
	Clock        clock.Clock
	Logger       *slog.Logger
}

type BankInput struct {
	UserID string
}

type BankOutput struct {
	Balance int64

	// Opened is true when this call created the account
	Opened bool
}

type DailyInput struct {
	GuildID string

	// UserID claims the payout and carries the cooldown
	UserID string

	// RecipientID receives the payout, defaults to UserID
	RecipientID string
}

type DailyOutput struct {
	RecipientID string

	// Amount is what was paid out
	Amount int64

	// Balance is the balance after the payout
	Balance int64

	// NextClaim is when the member may claim again
	NextClaim time.Time
}
