package usecase

import (
	"context"
	"errors"
	"testing"

	"festival_backend/internal/domain/entities"
	mock_interfaces "festival_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type artistDeps struct {
	repo  *mock_interfaces.MockIArtistRepository
	media *mock_interfaces.MockIMediaRepository
	uc    *ArtistUseCase
}

func newArtistDeps(t *testing.T) *artistDeps {
	ctrl := gomock.NewController(t)
	d := &artistDeps{
		repo:  mock_interfaces.NewMockIArtistRepository(ctrl),
		media: mock_interfaces.NewMockIMediaRepository(ctrl),
	}
	d.uc = NewArtistUseCase(d.repo, d.media, zaptest.NewLogger(t))
	return d
}

func TestArtistUseCase_ScheduleValidation(t *testing.T) {
	cases := map[string]struct {
		in     ArtistInput
		detail string
	}{
		"missing name":        {ArtistInput{Name: "  "}, "Artist name is required"},
		"unknown day":         {ArtistInput{Name: "A", Day: "monday"}, `Unsupported day "monday"`},
		"unknown stage":       {ArtistInput{Name: "A", Stage: "roof"}, `Unsupported stage "roof"`},
		"hour out of range":   {ArtistInput{Name: "A", StartTime: "24:00"}, `Invalid start time "24:00". Use HH:mm`},
		"single digit hour":   {ArtistInput{Name: "A", StartTime: "9:00"}, `Invalid start time "9:00". Use HH:mm`},
		"bad end time":        {ArtistInput{Name: "A", StartTime: "18:00", EndTime: "18:60"}, `Invalid end time "18:60". Use HH:mm`},
		"end without start":   {ArtistInput{Name: "A", EndTime: "20:00"}, "End time requires a start time"},
		"end before start":    {ArtistInput{Name: "A", StartTime: "21:00", EndTime: "20:30"}, "End time 20:30 must be after start time 21:00"},
		"zero-length set":     {ArtistInput{Name: "A", StartTime: "21:00", EndTime: "21:00"}, "End time 21:00 must be after start time 21:00"},
		"unknown platform":    {ArtistInput{Name: "A", SocialLinks: []entities.SocialLink{{Platform: "myspace", URL: "https://x.example"}}}, `Unsupported social platform "myspace"`},
		"relative social url": {ArtistInput{Name: "A", SocialLinks: []entities.SocialLink{{Platform: entities.PlatformInstagram, URL: "/fest"}}}, `Invalid instagram link "/fest"`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			d := newArtistDeps(t)
			d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			_, err := d.uc.Create(context.Background(), tc.in)
			if !errors.Is(err, ErrInvalidArtist) {
				t.Fatalf("expected ErrInvalidArtist, got %v", err)
			}
			if got := Detail(err, ""); got != tc.detail {
				t.Fatalf("expected detail %q, got %q", tc.detail, got)
			}
		})
	}
}

func TestArtistUseCase_Create(t *testing.T) {
	t.Run("duplicate name", func(t *testing.T) {
		d := newArtistDeps(t)
		d.repo.EXPECT().List(gomock.Any()).Return([]entities.Artist{{ID: "a-1", Name: "The Band"}}, nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := d.uc.Create(context.Background(), ArtistInput{Name: "the band"})
		if !errors.Is(err, ErrInvalidArtist) {
			t.Fatalf("expected ErrInvalidArtist, got %v", err)
		}
	})

	t.Run("unknown image", func(t *testing.T) {
		d := newArtistDeps(t)
		d.repo.EXPECT().List(gomock.Any()).Return(nil, nil)
		d.media.EXPECT().GetByID(gomock.Any(), "77").Return(entities.Media{}, nil)

		_, err := d.uc.Create(context.Background(), ArtistInput{Name: "A", ImageID: int64Ptr(77)})
		if !errors.Is(err, ErrInvalidArtist) || Detail(err, "") != "Image 77 not found" {
			t.Fatalf("expected missing image error, got %v", err)
		}
	})

	t.Run("scheduled artist", func(t *testing.T) {
		d := newArtistDeps(t)
		d.repo.EXPECT().List(gomock.Any()).Return(nil, nil)
		d.media.EXPECT().GetByID(gomock.Any(), "3").Return(entities.Media{ID: "3"}, nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Artist) (entities.Artist, error) {
				if a.Name != "Closer" || a.StartTime != "23:00" || a.EndTime != "23:59" || a.Stage != entities.StageTent {
					t.Fatalf("unexpected artist: %+v", a)
				}
				a.ID = "a-9"
				return a, nil
			})

		got, err := d.uc.Create(context.Background(), ArtistInput{
			Name: " Closer ", Day: entities.DaySunday, StartTime: "23:00", EndTime: " 23:59",
			Stage: entities.StageTent, ImageID: int64Ptr(3),
		})
		if err != nil || got.ID != "a-9" {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})
}

func TestArtistUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		d := newArtistDeps(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "a-404").Return(entities.Artist{}, nil)

		_, err := d.uc.Update(context.Background(), "a-404", ArtistInput{Name: "A"})
		if !errors.Is(err, ErrArtistNotFound) {
			t.Fatalf("expected ErrArtistNotFound, got %v", err)
		}
	})

	t.Run("keeping its own name is not a duplicate", func(t *testing.T) {
		d := newArtistDeps(t)
		prev := entities.Artist{ID: "a-1", Name: "The Band", Day: entities.DayFriday}
		d.repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(prev, nil)
		d.repo.EXPECT().List(gomock.Any()).Return([]entities.Artist{prev}, nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Artist) (entities.Artist, error) {
				if a.ID != "a-1" || a.Day != entities.DaySaturday {
					t.Fatalf("unexpected artist: %+v", a)
				}
				return a, nil
			})

		if _, err := d.uc.Update(context.Background(), "a-1", ArtistInput{Name: "The Band", Day: entities.DaySaturday}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestArtistUseCase_Delete(t *testing.T) {
	d := newArtistDeps(t)
	d.repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Artist{ID: "a-1"}, nil)
	d.repo.EXPECT().Delete(gomock.Any(), "a-1").Return(nil)

	if err := d.uc.Delete(context.Background(), " a-1 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
