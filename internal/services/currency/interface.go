package currency

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/pearl/internal/services/currency Service

import "context"

// Service defines the interface for the currency service
type Service interface {
	// Bank returns the member's balance, opening an account on first use
	Bank(ctx context.Context, input *BankInput) (*BankOutput, error)

	// Daily pays the member a random amount once per cooldown period
	Daily(ctx context.Context, input *DailyInput) (*DailyOutput, error)
}
