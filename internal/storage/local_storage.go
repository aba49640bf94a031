package storage

import (
	"context"
	"fmt"
	"image"
	"os"
)

// LocalImageFetcher reads images from the local file system
type LocalImageFetcher struct{}

// NewLocalImageFetcher creates a local file fetcher
func NewLocalImageFetcher() ImageFetcher {
	return &LocalImageFetcher{}
}

// FetchImage opens and decodes the file at path
func (l *LocalImageFetcher) FetchImage(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	return decodeImage(file)
}
