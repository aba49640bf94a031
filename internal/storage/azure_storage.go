package storage

import (
	"context"
	"fmt"
	"image"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// AzureBlobFetcher downloads blobs through an authenticated azblob client
type AzureBlobFetcher struct {
	client   *azblob.Client
	maxBytes int64
}

func NewAzureBlobFetcher(accountName string, accountKey string, maxBytes int64) (ImageFetcher, error) {
	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, fmt.Errorf("invalid azure credentials: %w", err)
	}

	client, err := azblob.NewClientWithSharedKeyCredential(
		fmt.Sprintf("https://%s.blob.core.windows.net/", accountName),
		credential,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure client: %w", err)
	}

	return &AzureBlobFetcher{client: client, maxBytes: maxBytes}, nil
}

func (s *AzureBlobFetcher) FetchImage(ctx context.Context, blobURL string) (image.Image, error) {
	parsedURL, err := url.Parse(blobURL)
	if err != nil {
		return nil, fmt.Errorf("invalid blob URL: %w", err)
	}

	containerName, blobName, err := parseBlobPath(parsedURL)
	if err != nil {
		return nil, err
	}

	downloadResponse, err := s.client.DownloadStream(ctx, containerName, blobName, nil)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer downloadResponse.Body.Close()

	body, err := readLimited(downloadResponse.Body, s.maxBytes)
	if err != nil {
		return nil, err
	}
	return decodeImage(body)
}

// parseBlobPath splits /<container>/<blob> into its parts. The older
// /<container>?blob=<name> form is accepted too.
func parseBlobPath(u *url.URL) (string, string, error) {
	path := strings.TrimPrefix(u.Path, "/")
	containerName, blobName, _ := strings.Cut(path, "/")
	if blobName == "" {
		blobName = u.Query().Get("blob")
	}
	if containerName == "" || blobName == "" {
		return "", "", fmt.Errorf("blob URL must name a container and a blob: %q", u.String())
	}
	return containerName, blobName, nil
}
