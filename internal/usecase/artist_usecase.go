package usecase

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrArtistNotFound = errors.New("artist not found")
	ErrInvalidArtist  = errors.New("invalid artist")
)

// ArtistInput is the full set of editable artist fields. Update replaces
// every field with the input.
type ArtistInput struct {
	Name        string
	Day         entities.FestivalDay
	StartTime   string
	EndTime     string
	Stage       entities.Stage
	Bio         string
	ImageID     *int64
	SocialLinks []entities.SocialLink
}

type IArtistUseCase interface {
	Create(ctx context.Context, in ArtistInput) (entities.Artist, error)
	Update(ctx context.Context, id string, in ArtistInput) (entities.Artist, error)
	GetByID(ctx context.Context, id string) (entities.Artist, error)
	List(ctx context.Context) ([]entities.Artist, error)
	Delete(ctx context.Context, id string) error
}

type ArtistUseCase struct {
	repo  interfaces.IArtistRepository
	media interfaces.IMediaRepository
	log   *zap.Logger
}

var _ IArtistUseCase = (*ArtistUseCase)(nil)

func NewArtistUseCase(repo interfaces.IArtistRepository, media interfaces.IMediaRepository, log *zap.Logger) *ArtistUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ArtistUseCase{repo: repo, media: media, log: log.Named("artists")}
}

func (u *ArtistUseCase) Create(ctx context.Context, in ArtistInput) (entities.Artist, error) {
	a := applyArtistInput(entities.Artist{}, in)
	if err := u.validate(ctx, a); err != nil {
		return entities.Artist{}, err
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		u.log.Error("artist create failed", zap.String("name", a.Name), zap.Error(err))
		return entities.Artist{}, err
	}
	return created, nil
}

func (u *ArtistUseCase) Update(ctx context.Context, id string, in ArtistInput) (entities.Artist, error) {
	prev, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Artist{}, err
	}
	next := applyArtistInput(prev, in)
	if err := u.validate(ctx, next); err != nil {
		return entities.Artist{}, err
	}
	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		u.log.Error("artist update failed", zap.String("artist_id", prev.ID), zap.Error(err))
		return entities.Artist{}, err
	}
	if updated.ID == "" {
		return entities.Artist{}, ErrArtistNotFound
	}
	return updated, nil
}

func (u *ArtistUseCase) GetByID(ctx context.Context, id string) (entities.Artist, error) {
	a, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Artist{}, err
	}
	if a.ID == "" {
		return entities.Artist{}, ErrArtistNotFound
	}
	return a, nil
}

func (u *ArtistUseCase) List(ctx context.Context) ([]entities.Artist, error) {
	return u.repo.List(ctx)
}

func (u *ArtistUseCase) Delete(ctx context.Context, id string) error {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, a.ID)
}

func applyArtistInput(a entities.Artist, in ArtistInput) entities.Artist {
	a.Name = strings.TrimSpace(in.Name)
	a.Day = in.Day
	a.StartTime = strings.TrimSpace(in.StartTime)
	a.EndTime = strings.TrimSpace(in.EndTime)
	a.Stage = in.Stage
	a.Bio = in.Bio
	a.ImageID = in.ImageID
	a.SocialLinks = in.SocialLinks
	return a
}

func (u *ArtistUseCase) validate(ctx context.Context, a entities.Artist) error {
	if err := validateArtistFields(a); err != nil {
		return err
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID != a.ID && strings.EqualFold(other.Name, a.Name) {
			return detailed(ErrInvalidArtist, "An artist named %q already exists", a.Name)
		}
	}

	if a.ImageID != nil {
		ok, err := mediaExists(ctx, u.media, *a.ImageID)
		if err != nil {
			return err
		}
		if !ok {
			return detailed(ErrInvalidArtist, "Image %d not found", *a.ImageID)
		}
	}
	return nil
}

// validateArtistFields checks the schedule. A set must end after it starts
// on the same day.
func validateArtistFields(a entities.Artist) error {
	switch {
	case a.Name == "":
		return detailed(ErrInvalidArtist, "Artist name is required")
	case a.Day != "" && !a.Day.Valid():
		return detailed(ErrInvalidArtist, "Unsupported day %q", a.Day)
	case a.Stage != "" && !a.Stage.Valid():
		return detailed(ErrInvalidArtist, "Unsupported stage %q", a.Stage)
	}

	var start, end int
	var ok bool
	if a.StartTime != "" {
		if start, ok = entities.ParseClock(a.StartTime); !ok {
			return detailed(ErrInvalidArtist, "Invalid start time %q. Use HH:mm", a.StartTime)
		}
	}
	if a.EndTime != "" {
		if end, ok = entities.ParseClock(a.EndTime); !ok {
			return detailed(ErrInvalidArtist, "Invalid end time %q. Use HH:mm", a.EndTime)
		}
		if a.StartTime == "" {
			return detailed(ErrInvalidArtist, "End time requires a start time")
		}
		if end <= start {
			return detailed(ErrInvalidArtist, "End time %s must be after start time %s", a.EndTime, a.StartTime)
		}
	}

	for _, l := range a.SocialLinks {
		if !l.Platform.Valid() {
			return detailed(ErrInvalidArtist, "Unsupported social platform %q", l.Platform)
		}
		if u, err := url.Parse(l.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return detailed(ErrInvalidArtist, "Invalid %s link %q", l.Platform, l.URL)
		}
	}
	return nil
}

// mediaExists reports whether an uploaded media document with id exists. A
// nil repository accepts every id.
func mediaExists(ctx context.Context, media interfaces.IMediaRepository, id int64) (bool, error) {
	if media == nil {
		return true, nil
	}
	m, err := media.GetByID(ctx, strconv.FormatInt(id, 10))
	if err != nil {
		return false, err
	}
	return m.ID != "", nil
}
