package cooldown

import "time"

type AcquireInput struct {
	// Bucket names the command being rate limited, e.g. "daily"
	Bucket string

	// Key scopes the cooldown, e.g. guild and member IDs
	Key string

	// Duration is how long the cooldown lasts once acquired
	Duration time.Duration
}

type AcquireOutput struct {
	// Acquired is false when a cooldown was already running
	Acquired bool

	// RetryAfter is the time left on the running cooldown
	RetryAfter time.Duration
}

type ReleaseInput struct {
	Bucket string
	Key    string
}
