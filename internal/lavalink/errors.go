package lavalink

import (
	"errors"
	"fmt"
)

// ErrNoSession is returned by player calls made before the node sent its ready message
var ErrNoSession = errors.New("lavalink session not established")

// APIError is a non-2xx response from the node
type APIError struct {
	Status  int
	Message string
	Path    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lavalink %s: %d %s", e.Path, e.Status, e.Message)
}
