package interfaces

import (
	"context"
	"errors"
	"io"
)

var ErrObjectNotFound = errors.New("object not found")

// StoredObject is an open handle on a stored blob. Callers close Body.
type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// IObjectStorage abstracts the blob store holding media bytes.
type IObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	Open(ctx context.Context, key string) (StoredObject, error)
}

// DownloadedAsset is a fully read remote resource.
type DownloadedAsset struct {
	Body        []byte
	ContentType string
}

// IAssetDownloader fetches a remote URL. Non-2xx answers are errors.
type IAssetDownloader interface {
	Download(ctx context.Context, url string) (DownloadedAsset, error)
}
