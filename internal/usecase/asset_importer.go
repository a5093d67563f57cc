package usecase

import (
	"context"
	"errors"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	defaultAssetExtension   = ".jpg"
	defaultAssetContentType = "image/jpeg"

	// MediaKeyPrefix is the object storage folder for imported assets.
	MediaKeyPrefix = "media/"
	// MediaURLPrefix is the public path media files are served under.
	MediaURLPrefix = "/v1/media/file/"
)

var (
	ErrMediaNotFound = errors.New("media not found")

	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// IAssetImporter copies a remote media file into local storage.
// A nil result means the asset is missing; callers carry on without it.
type IAssetImporter interface {
	Import(ctx context.Context, remoteURL, filenamePrefix string) *entities.ImportedAsset
}

// IMediaUseCase serves stored media files.
type IMediaUseCase interface {
	Open(ctx context.Context, filename string) (interfaces.StoredObject, error)
}

type AssetImporter struct {
	downloader interfaces.IAssetDownloader
	storage    interfaces.IObjectStorage
	media      interfaces.IMediaRepository
	log        *zap.Logger
}

var (
	_ IAssetImporter = (*AssetImporter)(nil)
	_ IMediaUseCase  = (*AssetImporter)(nil)
)

func NewAssetImporter(downloader interfaces.IAssetDownloader, storage interfaces.IObjectStorage, media interfaces.IMediaRepository, log *zap.Logger) *AssetImporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &AssetImporter{downloader: downloader, storage: storage, media: media, log: log.Named("asset_importer")}
}

// Import never retries and does not validate size or format.
func (a *AssetImporter) Import(ctx context.Context, remoteURL, filenamePrefix string) *entities.ImportedAsset {
	log := a.log.With(zap.String("url", remoteURL))

	asset, err := a.downloader.Download(ctx, remoteURL)
	if err != nil {
		log.Warn("asset download failed", zap.Error(err))
		return nil
	}

	contentType := asset.ContentType
	if contentType == "" {
		contentType = defaultAssetContentType
	}
	safePrefix := SanitizeFilenamePrefix(filenamePrefix)
	filename := safePrefix + extensionFromURL(remoteURL)
	key := MediaKeyPrefix + filename

	if err := a.storage.Put(ctx, key, contentType, asset.Body); err != nil {
		log.Error("asset upload failed", zap.String("key", key), zap.Error(err))
		return nil
	}

	doc, err := a.media.Create(ctx, entities.Media{
		Alt:        safePrefix + " Instagram content",
		Filename:   filename,
		MimeType:   contentType,
		Size:       int64(len(asset.Body)),
		StorageKey: key,
		URL:        MediaURLPrefix + filename,
	})
	if err != nil {
		log.Error("media record create failed", zap.String("filename", filename), zap.Error(err))
		return nil
	}

	id, err := strconv.ParseInt(doc.ID, 10, 64)
	if err != nil {
		log.Error("media id is not numeric", zap.String("media_id", doc.ID), zap.String("filename", filename))
		return nil
	}
	log.Info("asset imported", zap.Int64("media_id", id), zap.String("filename", filename), zap.Int("size", len(asset.Body)))
	return &entities.ImportedAsset{ID: id, Filename: doc.Filename}
}

func (a *AssetImporter) Open(ctx context.Context, filename string) (interfaces.StoredObject, error) {
	if filename == "" || filename != path.Base(filename) || strings.HasPrefix(filename, ".") {
		return interfaces.StoredObject{}, ErrMediaNotFound
	}
	obj, err := a.storage.Open(ctx, MediaKeyPrefix+filename)
	if errors.Is(err, interfaces.ErrObjectNotFound) {
		return interfaces.StoredObject{}, ErrMediaNotFound
	}
	return obj, err
}

// SanitizeFilenamePrefix replaces every character outside [a-zA-Z0-9_-] with "_".
func SanitizeFilenamePrefix(prefix string) string {
	return unsafeFilenameChars.ReplaceAllString(prefix, "_")
}

func extensionFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return defaultAssetExtension
	}
	if ext := path.Ext(u.Path); ext != "" {
		return ext
	}
	return defaultAssetExtension
}
