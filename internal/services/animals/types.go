package animals

import (
	"log/slog"
	"net/http"
)

const (
	DefaultCatURL            = "https://aws.random.cat/meow"
	DefaultDogURL            = "https://random.dog/woof.json"
	DefaultRequestsPerSecond = 1.0
)

// Config holds configuration for the animals service
type Config struct {
	CatURL string
	DogURL string

	// RequestsPerSecond caps calls to the media APIs, shared by both animals
	RequestsPerSecond float64

	HTTPClient *http.Client
	Logger     *slog.Logger
}

type MediaOutput struct {
	URL string
}

// catResponse is the body of the cat API
type catResponse struct {
	File string `json:"file"`
}

// dogResponse is the body of the dog API
type dogResponse struct {
	URL string `json:"url"`
}
