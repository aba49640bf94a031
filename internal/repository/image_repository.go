package repository

import (
	"context"
	"image"
	"net/url"
	"strings"

	apperrors "github.com/anime-shed/image-averager-go/internal/errors"
	"github.com/anime-shed/image-averager-go/internal/storage"
	"github.com/anime-shed/image-averager-go/pkg/models"
	"github.com/anime-shed/image-averager-go/pkg/validation"
)

// SourceImageRepository routes each source to the fetcher that can read it
type SourceImageRepository struct {
	validator    *validation.SourceValidator
	localFetcher storage.ImageFetcher
	httpFetcher  storage.ImageFetcher

	// optional; used for URLs on blobHost
	blobFetcher storage.ImageFetcher
	blobHost    string
}

// NewSourceImageRepository creates a repository for local files and http(s) URLs
func NewSourceImageRepository(validator *validation.SourceValidator, local, remote storage.ImageFetcher) *SourceImageRepository {
	return &SourceImageRepository{
		validator:    validator,
		localFetcher: local,
		httpFetcher:  remote,
	}
}

// WithBlobFetcher sends URLs whose host is blobHost through fetcher
func (r *SourceImageRepository) WithBlobFetcher(blobHost string, fetcher storage.ImageFetcher) *SourceImageRepository {
	r.blobHost = strings.ToLower(blobHost)
	r.blobFetcher = fetcher
	return r
}

// FetchImage retrieves the image behind src. Every failure is a load error.
func (r *SourceImageRepository) FetchImage(ctx context.Context, src models.Source) (image.Image, error) {
	if err := r.ValidateSource(src); err != nil {
		return nil, err
	}

	var (
		img image.Image
		err error
	)
	switch src.Kind {
	case models.SourceLocal:
		img, err = r.localFetcher.FetchImage(ctx, src.Location)
		if err != nil {
			return nil, apperrors.NewLoadError("image not found", err)
		}
	default:
		img, err = r.remoteFetcher(src.Location).FetchImage(ctx, src.Location)
		if err != nil {
			return nil, apperrors.NewLoadError("image not downloaded", err)
		}
	}

	if img == nil || img.Bounds().Empty() {
		return nil, apperrors.NewLoadError("decoded image is empty", nil)
	}
	return img, nil
}

// ValidateSource validates the source, reporting problems as load errors
func (r *SourceImageRepository) ValidateSource(src models.Source) error {
	if err := r.validator.ValidateSource(src); err != nil {
		return apperrors.NewLoadError("invalid image source", err)
	}
	return nil
}

func (r *SourceImageRepository) remoteFetcher(rawURL string) storage.ImageFetcher {
	if r.blobFetcher == nil {
		return r.httpFetcher
	}
	if u, err := url.Parse(rawURL); err == nil && strings.ToLower(u.Hostname()) == r.blobHost {
		return r.blobFetcher
	}
	return r.httpFetcher
}
