package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotConfigured is returned by every operation when no image host is set up.
var ErrNotConfigured = errors.New("image storage is not configured")

// StorageService uploads images to the content host and removes them again.
type StorageService interface {
	// Upload stores the image and returns its public delivery URL.
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
	// Delete removes an image given its delivery URL or public ID. It
	// reports false when the host had no such image.
	Delete(ctx context.Context, urlOrPublicID string) (bool, error)
}

// Disabled is the StorageService used when no image host is configured.
type Disabled struct{}

func (Disabled) Upload(context.Context, io.Reader, string) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) Delete(context.Context, string) (bool, error) {
	return false, ErrNotConfigured
}
