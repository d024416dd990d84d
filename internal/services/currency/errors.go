package currency

import (
	"fmt"
	"time"
)

// CurrencyError is a custom error type for currency-related errors
type CurrencyError string

// Error implements the error interface
func (e CurrencyError) Error() string {
	return string(e)
}

const (
	ErrNilConfig         CurrencyError = "config cannot be nil"
	ErrNilAccountRepo    CurrencyError = "account repository cannot be nil"
	ErrNilCooldownRepo   CurrencyError = "cooldown repository cannot be nil"
	ErrNilRandomizer     CurrencyError = "randomizer cannot be nil"
	ErrNilClock          CurrencyError = "clock cannot be nil"
	ErrInvalidDailyRange CurrencyError = "daily minimum must be positive and not above the maximum"
)

// CooldownError is returned when a command is used again before its cooldown ran out
type CooldownError struct {
	// RetryAfter is how long the caller has to wait
	RetryAfter time.Duration

	// Until is the moment the cooldown ends
	Until time.Time
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("command on cooldown for another %s", e.RetryAfter.Round(time.Second))
}
