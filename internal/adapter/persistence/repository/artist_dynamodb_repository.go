package repository

import (
	"context"
	"sort"
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/infrastructure/database"
	"festival_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type socialLinkItem struct {
	Platform string `dynamodbav:"platform"`
	URL      string `dynamodbav:"url"`
}

type artistItem struct {
	ID          string           `dynamodbav:"id"`
	Name        string           `dynamodbav:"name"`
	Day         string           `dynamodbav:"day,omitempty"`
	StartTime   string           `dynamodbav:"start_time,omitempty"`
	EndTime     string           `dynamodbav:"end_time,omitempty"`
	Stage       string           `dynamodbav:"stage,omitempty"`
	Bio         string           `dynamodbav:"bio,omitempty"`
	ImageID     *int64           `dynamodbav:"image_id,omitempty"`
	SocialLinks []socialLinkItem `dynamodbav:"social_links,omitempty"`
	CreatedAt   string           `dynamodbav:"created_at"`
	UpdatedAt   string           `dynamodbav:"updated_at"`
}

// ArtistDynamoRepository persists the lineup.
//
// Table requirements:
//   - PK: id (string)
type ArtistDynamoRepository struct {
	table itemTable[artistItem]
}

var _ interfaces.IArtistRepository = (*ArtistDynamoRepository)(nil)

func NewArtistDynamoRepository(ddb database.DynamoDBAPI, tableName string) *ArtistDynamoRepository {
	return &ArtistDynamoRepository{table: itemTable[artistItem]{ddb: ddb, name: tableName}}
}

func (r *ArtistDynamoRepository) Create(ctx context.Context, a entities.Artist) (entities.Artist, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	a.CreatedAt, a.UpdatedAt = now, now
	if err := r.table.create(ctx, toArtistItem(a)); err != nil {
		return entities.Artist{}, err
	}
	return a, nil
}

func (r *ArtistDynamoRepository) GetByID(ctx context.Context, id string) (entities.Artist, error) {
	it, found, err := r.table.get(ctx, id)
	if err != nil || !found {
		return entities.Artist{}, err
	}
	return fromArtistItem(it), nil
}

// Update replaces the stored artist. Missing artists yield a zero value.
func (r *ArtistDynamoRepository) Update(ctx context.Context, a entities.Artist) (entities.Artist, error) {
	a.UpdatedAt = time.Now().UTC()
	ok, err := r.table.replace(ctx, toArtistItem(a))
	if err != nil || !ok {
		return entities.Artist{}, err
	}
	return a, nil
}

// List orders by day, then start time, then name. Unscheduled artists go last.
func (r *ArtistDynamoRepository) List(ctx context.Context) ([]entities.Artist, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	artists := make([]entities.Artist, 0, len(items))
	for _, it := range items {
		artists = append(artists, fromArtistItem(it))
	}
	sort.SliceStable(artists, func(i, j int) bool {
		a, b := artists[i], artists[j]
		if da, db := dayRank(a.Day), dayRank(b.Day); da != db {
			return da < db
		}
		if a.StartTime != b.StartTime {
			if a.StartTime == "" || b.StartTime == "" {
				return b.StartTime == ""
			}
			return a.StartTime < b.StartTime
		}
		return a.Name < b.Name
	})
	return artists, nil
}

func (r *ArtistDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

func dayRank(d entities.FestivalDay) int {
	switch d {
	case entities.DayFriday:
		return 0
	case entities.DaySaturday:
		return 1
	case entities.DaySunday:
		return 2
	}
	return 3
}

func toArtistItem(a entities.Artist) artistItem {
	it := artistItem{
		ID:        a.ID,
		Name:      a.Name,
		Day:       string(a.Day),
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Stage:     string(a.Stage),
		Bio:       a.Bio,
		ImageID:   a.ImageID,
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
	}
	for _, l := range a.SocialLinks {
		it.SocialLinks = append(it.SocialLinks, socialLinkItem{Platform: string(l.Platform), URL: l.URL})
	}
	return it
}

func fromArtistItem(it artistItem) entities.Artist {
	a := entities.Artist{
		ID:        it.ID,
		Name:      it.Name,
		Day:       entities.FestivalDay(it.Day),
		StartTime: it.StartTime,
		EndTime:   it.EndTime,
		Stage:     entities.Stage(it.Stage),
		Bio:       it.Bio,
		ImageID:   it.ImageID,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	for _, l := range it.SocialLinks {
		a.SocialLinks = append(a.SocialLinks, entities.SocialLink{Platform: entities.SocialPlatform(l.Platform), URL: l.URL})
	}
	return a
}
