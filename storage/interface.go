package storage

import (
	"context"
	"io"
)

// Client is the remote media host. Uploaded assets are addressed by key;
// the key doubles as the public identifier stored on owning documents.
type Client interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
	HealthCheck() error
}

// MediaError represents media-host specific errors
type MediaError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Key     string `json:"key,omitempty"`
}

func (e *MediaError) Error() string {
	return e.Message
}

// NewMediaError creates a new media error
func NewMediaError(code, message, key string) *MediaError {
	return &MediaError{
		Code:    code,
		Message: message,
		Key:     key,
	}
}
