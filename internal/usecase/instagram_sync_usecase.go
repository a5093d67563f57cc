package usecase

import (
	"context"
	"errors"
	"fmt"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrMissingFetchUserID       = errors.New("user id not provided")
	ErrMissingInstagramUsername = errors.New("instagram username not provided or configured")
	ErrFetchFailed              = errors.New("error fetching posts")
)

// IInstagramSyncUseCase mirrors a public Instagram profile into local storage.
type IInstagramSyncUseCase interface {
	Sync(ctx context.Context, userID, username string) (entities.SyncReport, error)
	ListPosts(ctx context.Context, ownerUsername string) ([]entities.ImportedPost, error)
}

type InstagramSyncUseCase struct {
	ledger          IFetchLedgerUseCase
	importer        IAssetImporter
	scraper         interfaces.IScrapingGateway
	posts           interfaces.IImportedPostRepository
	defaultUsername string
	log             *zap.Logger
}

var _ IInstagramSyncUseCase = (*InstagramSyncUseCase)(nil)

func NewInstagramSyncUseCase(
	ledger IFetchLedgerUseCase,
	importer IAssetImporter,
	scraper interfaces.IScrapingGateway,
	posts interfaces.IImportedPostRepository,
	defaultUsername string,
	log *zap.Logger,
) *InstagramSyncUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &InstagramSyncUseCase{
		ledger:          ledger,
		importer:        importer,
		scraper:         scraper,
		posts:           posts,
		defaultUsername: defaultUsername,
		log:             log.Named("instagram_sync"),
	}
}

// Sync runs one ingestion for userID. Posts are processed sequentially in feed
// order; only a gateway-level failure aborts the run.
func (u *InstagramSyncUseCase) Sync(ctx context.Context, userID, username string) (entities.SyncReport, error) {
	if userID == "" {
		return entities.SyncReport{}, ErrMissingFetchUserID
	}
	if username == "" {
		username = u.defaultUsername
	}
	if username == "" {
		return entities.SyncReport{}, ErrMissingInstagramUsername
	}

	log := u.log.With(zap.String("user_id", userID), zap.String("username", username))
	date := u.ledger.Today()

	if err := u.ledger.Reserve(ctx, userID, username, date); err != nil {
		switch {
		case errors.Is(err, ErrFetchRateLimited):
			_ = u.ledger.Record(ctx, userID, username, date, entities.FetchStatusRateLimited, "User already fetched successfully today.")
			log.Info("fetch rejected: already succeeded today")
			return entities.SyncReport{}, detailed(ErrFetchRateLimited, "Fetch limit reached for %s today.", username)
		case errors.Is(err, ErrFetchInProgress):
			_ = u.ledger.Record(ctx, userID, username, date, entities.FetchStatusRateLimited, "Another fetch is already in progress.")
			log.Info("fetch rejected: another run in progress")
			return entities.SyncReport{}, detailed(ErrFetchInProgress, "A fetch for %s is already in progress.", username)
		}
		log.Error("fetch ledger unavailable", zap.Error(err))
		return entities.SyncReport{}, detailed(fmt.Errorf("%w: %w", ErrFetchFailed, err), "Error fetching posts: %s", err.Error())
	}

	log.Info("fetching instagram posts")
	feed, err := u.scraper.FetchProfilePosts(ctx, username)
	if err != nil {
		log.Error("instagram fetch failed", zap.Error(err))
		_ = u.ledger.Record(ctx, userID, username, date, entities.FetchStatusFailed, err.Error())
		if relErr := u.ledger.Release(ctx, userID, username, date); relErr != nil {
			log.Warn("failed to release fetch claim", zap.Error(relErr))
		}
		return entities.SyncReport{}, detailed(fmt.Errorf("%w: %w", ErrFetchFailed, err), "Error fetching posts: %s", err.Error())
	}

	report := entities.SyncReport{Username: username, TotalSeen: len(feed)}
	for _, post := range feed {
		added, mediaFailed := u.syncPost(ctx, log, username, post)
		if mediaFailed {
			report.MediaFailures++
		}
		switch added {
		case postAdded:
			report.Added++
		case postUpdated:
			report.UpdatedOrSkipped++
		}
	}

	report.Message = fmt.Sprintf("Fetched for %s. Added: %d, Updated/Skipped: %d, Media Processing Failed: %d. Total from API: %d.",
		username, report.Added, report.UpdatedOrSkipped, report.MediaFailures, report.TotalSeen)

	_ = u.ledger.Record(ctx, userID, username, date, entities.FetchStatusSuccess, report.Message)
	if err := u.ledger.Complete(ctx, userID, username, date); err != nil {
		log.Error("failed to mark fetch claim successful", zap.Error(err))
	}
	log.Info("instagram sync finished",
		zap.Int("added", report.Added), zap.Int("updated", report.UpdatedOrSkipped),
		zap.Int("media_failures", report.MediaFailures), zap.Int("total", report.TotalSeen))
	return report, nil
}

type postOutcome int

const (
	postSkipped postOutcome = iota
	postAdded
	postUpdated
)

func (u *InstagramSyncUseCase) syncPost(ctx context.Context, log *zap.Logger, username string, p entities.ProfilePost) (postOutcome, bool) {
	log = log.With(zap.String("post_id", p.ID), zap.String("shortcode", p.Shortcode))

	record := entities.ImportedPost{
		InstagramPostID: p.ID,
		Shortcode:       p.Shortcode,
		OwnerUsername:   username,
		Caption:         p.Caption,
		PostDate:        p.TakenAt,
		LikesCount:      p.LikesCount,
		CommentsCount:   p.CommentsCount,
	}

	mediaFailed := false
	switch {
	case p.IsVideo && p.VideoURL != "":
		record.OriginalVideoURL = p.VideoURL
		if asset := u.importer.Import(ctx, p.VideoURL, fmt.Sprintf("%s_%s_video", username, p.Shortcode)); asset != nil {
			record.LocalVideoID = &asset.ID
		} else {
			mediaFailed = true
		}
	case p.DisplayURL != "":
		if !p.IsVideo {
			record.OriginalImageURL = p.DisplayURL
		}
		if asset := u.importer.Import(ctx, p.DisplayURL, fmt.Sprintf("%s_%s_image", username, p.Shortcode)); asset != nil {
			record.LocalImageID = &asset.ID
		} else {
			mediaFailed = true
		}
	}

	existing, err := u.posts.GetByInstagramID(ctx, p.ID)
	if err != nil {
		log.Error("failed to look up post", zap.Error(err))
		return postSkipped, mediaFailed
	}

	if existing.InstagramPostID == "" {
		if _, err := u.posts.Create(ctx, record); err != nil {
			log.Error("failed to save post", zap.Error(err))
			return postSkipped, mediaFailed
		}
		return postAdded, mediaFailed
	}

	if _, err := u.posts.UpdateSync(ctx, record); err != nil {
		log.Error("failed to update post", zap.Error(err))
		return postSkipped, mediaFailed
	}
	log.Debug("updated existing post")
	return postUpdated, mediaFailed
}

func (u *InstagramSyncUseCase) ListPosts(ctx context.Context, ownerUsername string) ([]entities.ImportedPost, error) {
	return u.posts.List(ctx, ownerUsername)
}
