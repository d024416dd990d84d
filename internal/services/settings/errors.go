package settings

// SettingsError is a custom error type for settings-related errors
type SettingsError string

// Error implements the error interface
func (e SettingsError) Error() string {
	return string(e)
}

const (
	ErrPrefixTooLong     SettingsError = "prefix is too long"
	ErrEmptyPrefix       SettingsError = "prefix cannot be empty"
	ErrSamePrefix        SettingsError = "prefix is already in use"
	ErrMissingPermission SettingsError = "manage server permission required"
	ErrNilConfig         SettingsError = "config cannot be nil"
	ErrNilRepository     SettingsError = "settings repository cannot be nil"
	ErrNilClock          SettingsError = "clock cannot be nil"
)
