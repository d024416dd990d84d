package animals

// AnimalsError is a custom error type for animal media errors
type AnimalsError string

// Error implements the error interface
func (e AnimalsError) Error() string {
	return string(e)
}

const (
	ErrBadResponse AnimalsError = "media api returned a bad response"
	ErrNilConfig   AnimalsError = "config cannot be nil"
	ErrMissingURL  AnimalsError = "cat and dog urls are required"
)
