package account

import "github.com/KirkDiggler/pearl/internal/models"

type GetAccountInput struct {
	UserID string
}

type GetAccountOutput struct {
	Account *models.Account

	// Created is true when the account did not exist before the call
	Created bool
}

type DepositInput struct {
	UserID string
	Amount int64
}

type DepositOutput struct {
	Account *models.Account
}
