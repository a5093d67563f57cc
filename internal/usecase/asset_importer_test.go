package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase/interfaces"
	mock_interfaces "festival_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSanitizeFilenamePrefix(t *testing.T) {
	cases := map[string]string{
		"band_ABC_image":   "band_ABC_image",
		"the.band_x/y":     "the_band_x_y",
		"emoji🎸-ok":        "emoji_-ok",
		"spaces are here!": "spaces_are_here_",
	}
	for in, want := range cases {
		if got := SanitizeFilenamePrefix(in); got != want {
			t.Fatalf("SanitizeFilenamePrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtensionFromURL(t *testing.T) {
	cases := map[string]string{
		"https://cdn.example/a/b/photo.webp?sig=1": ".webp",
		"https://cdn.example/a/b/noext":            ".jpg",
		"::not a url":                              ".jpg",
	}
	for in, want := range cases {
		if got := extensionFromURL(in); got != want {
			t.Fatalf("extensionFromURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAssetImporter_Import(t *testing.T) {
	t.Run("unreachable url returns nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dl := mock_interfaces.NewMockIAssetDownloader(ctrl)
		imp := NewAssetImporter(dl, mock_interfaces.NewMockIObjectStorage(ctrl), mock_interfaces.NewMockIMediaRepository(ctrl), nil)

		dl.EXPECT().Download(gomock.Any(), "https://cdn.example/x.jpg").Return(interfaces.DownloadedAsset{}, errors.New("connection refused"))

		if got := imp.Import(context.Background(), "https://cdn.example/x.jpg", "p"); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("storage failure returns nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dl := mock_interfaces.NewMockIAssetDownloader(ctrl)
		st := mock_interfaces.NewMockIObjectStorage(ctrl)
		imp := NewAssetImporter(dl, st, mock_interfaces.NewMockIMediaRepository(ctrl), nil)

		dl.EXPECT().Download(gomock.Any(), gomock.Any()).Return(interfaces.DownloadedAsset{Body: []byte("x")}, nil)
		st.EXPECT().Put(gomock.Any(), "media/p.jpg", "image/jpeg", []byte("x")).Return(errors.New("s3 down"))

		if got := imp.Import(context.Background(), "https://cdn.example/x", "p"); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("non numeric media id returns nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dl := mock_interfaces.NewMockIAssetDownloader(ctrl)
		st := mock_interfaces.NewMockIObjectStorage(ctrl)
		md := mock_interfaces.NewMockIMediaRepository(ctrl)
		imp := NewAssetImporter(dl, st, md, nil)

		dl.EXPECT().Download(gomock.Any(), gomock.Any()).Return(interfaces.DownloadedAsset{Body: []byte("x")}, nil)
		st.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		md.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Media{ID: "abc"}, nil)

		if got := imp.Import(context.Background(), "https://cdn.example/x.jpg", "p"); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dl := mock_interfaces.NewMockIAssetDownloader(ctrl)
		st := mock_interfaces.NewMockIObjectStorage(ctrl)
		md := mock_interfaces.NewMockIMediaRepository(ctrl)
		imp := NewAssetImporter(dl, st, md, nil)

		dl.EXPECT().Download(gomock.Any(), gomock.Any()).Return(interfaces.DownloadedAsset{Body: []byte("mp4"), ContentType: "video/mp4"}, nil)
		st.EXPECT().Put(gomock.Any(), "media/band_C1_video.mp4", "video/mp4", []byte("mp4")).Return(nil)
		md.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m entities.Media) (entities.Media, error) {
			if m.Size != 3 || m.MimeType != "video/mp4" || m.StorageKey != "media/band_C1_video.mp4" {
				t.Fatalf("unexpected media: %+v", m)
			}
			m.ID = "42"
			return m, nil
		})

		got := imp.Import(context.Background(), "https://cdn.example/v/clip.mp4", "band_C1_video")
		if got == nil || got.ID != 42 || got.Filename != "band_C1_video.mp4" {
			t.Fatalf("unexpected asset: %+v", got)
		}
	})
}

func TestAssetImporter_Open(t *testing.T) {
	t.Run("rejects traversal", func(t *testing.T) {
		imp := NewAssetImporter(nil, nil, nil, nil)
		for _, name := range []string{"", "../secret", "a/b.jpg", ".env"} {
			if _, err := imp.Open(context.Background(), name); !errors.Is(err, ErrMediaNotFound) {
				t.Fatalf("%q: expected ErrMediaNotFound, got %v", name, err)
			}
		}
	})

	t.Run("missing object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mock_interfaces.NewMockIObjectStorage(ctrl)
		imp := NewAssetImporter(nil, st, nil, nil)
		st.EXPECT().Open(gomock.Any(), "media/x.jpg").Return(interfaces.StoredObject{}, interfaces.ErrObjectNotFound)

		if _, err := imp.Open(context.Background(), "x.jpg"); !errors.Is(err, ErrMediaNotFound) {
			t.Fatalf("expected ErrMediaNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mock_interfaces.NewMockIObjectStorage(ctrl)
		imp := NewAssetImporter(nil, st, nil, nil)
		st.EXPECT().Open(gomock.Any(), "media/x.jpg").Return(interfaces.StoredObject{
			Body: io.NopCloser(strings.NewReader("img")), ContentType: "image/jpeg", Size: 3,
		}, nil)

		obj, err := imp.Open(context.Background(), "x.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer obj.Body.Close()
		if obj.Size != 3 {
			t.Fatalf("unexpected size %d", obj.Size)
		}
	})
}
