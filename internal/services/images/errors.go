package images

// ImagesError is a custom error type for image transform errors
type ImagesError string

// Error implements the error interface
func (e ImagesError) Error() string {
	return string(e)
}

const (
	ErrBadResponse   ImagesError = "image api returned a bad response"
	ErrNilConfig     ImagesError = "config cannot be nil"
	ErrMissingURL    ImagesError = "image api url is required"
	ErrMissingToken  ImagesError = "image api token is not configured"
	ErrUnknownEffect ImagesError = "unknown image effect"
	ErrMissingImage  ImagesError = "an image url is required"
)
