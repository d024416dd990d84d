package images

import (
	"log/slog"
	"net/http"
)

const (
	DefaultURL               = "https://api.dagpi.xyz"
	DefaultRequestsPerSecond = 1.0
)

// Effect names an image transform of the image api
type Effect string

const (
	EffectWasted       Effect = "wasted"
	EffectPixel        Effect = "pixel"
	EffectTriggered    Effect = "triggered"
	EffectInvert       Effect = "invert"
	EffectSobel        Effect = "sobel"
	EffectJail         Effect = "jail"
	EffectWhyAreYouGay Effect = "whyareyougay"
)

// Effects lists every supported effect
var Effects = []Effect{
	EffectWasted,
	EffectPixel,
	EffectTriggered,
	EffectInvert,
	EffectSobel,
	EffectJail,
	EffectWhyAreYouGay,
}

// Valid reports whether the effect is supported
func (e Effect) Valid() bool {
	for _, known := range Effects {
		if e == known {
			return true
		}
	}
	return false
}

// TwoImages reports whether the effect composes a second picture
func (e Effect) TwoImages() bool {
	return e == EffectWhyAreYouGay
}

// Config holds configuration for the images service
type Config struct {
	// URL is the base of the image api
	URL   string
	Token string

	RequestsPerSecond float64

	HTTPClient *http.Client
	Logger     *slog.Logger
}

type TransformInput struct {
	Effect Effect
	URL    string

	// SecondURL is only used by effects that compose two pictures
	SecondURL string
}

type TransformOutput struct {
	Data        []byte
	ContentType string

	// Extension is the file extension matching ContentType, without a dot
	Extension string
}
