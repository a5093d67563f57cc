// Package httpclient downloads remote media files.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"festival_backend/internal/usecase/interfaces"
)

// Downloader reads a remote resource fully into memory.
type Downloader struct {
	httpClient *http.Client
}

var _ interfaces.IAssetDownloader = (*Downloader)(nil)

func NewDownloader(timeout time.Duration) *Downloader {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Downloader{httpClient: &http.Client{Timeout: timeout}}
}

func (d *Downloader) Download(ctx context.Context, url string) (interfaces.DownloadedAsset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return interfaces.DownloadedAsset{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return interfaces.DownloadedAsset{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return interfaces.DownloadedAsset{}, fmt.Errorf("download failed: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.DownloadedAsset{}, fmt.Errorf("failed to read response: %w", err)
	}
	return interfaces.DownloadedAsset{Body: body, ContentType: resp.Header.Get("Content-Type")}, nil
}
