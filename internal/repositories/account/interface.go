package account

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pearl/internal/repositories/account Repository

import "context"

// Repository stores user currency balances
type Repository interface {
	// GetAccount returns the user's account, creating an empty one if needed
	GetAccount(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error)

	// Deposit adds an amount to the user's balance and returns the new balance
	Deposit(ctx context.Context, input *DepositInput) (*DepositOutput, error)
}
