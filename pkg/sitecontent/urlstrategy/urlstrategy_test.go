package urlstrategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBlobStore struct {
	url string
	err error
}

func (s stubBlobStore) GetDownloadURL(ctx context.Context, objectKey, downloadFilename string) (string, error) {
	return s.url, s.err
}

func TestCDNStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("joins base and key", func(t *testing.T) {
		s := NewCDNStrategy("https://cdn.example.com/")
		url, err := s.MediaURL(ctx, "media/objects/ab/cd_logo.png", "logo.png", "s3")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/media/objects/ab/cd_logo.png", url)
	})

	t.Run("empty base is an error", func(t *testing.T) {
		s := NewCDNStrategy("")
		_, err := s.MediaURL(ctx, "media/x", "x", "s3")
		assert.Error(t, err)
	})
}

func TestStorageDelegatedStrategy(t *testing.T) {
	ctx := context.Background()

	s := NewStorageDelegatedStrategy(map[string]BlobStore{
		"s3": stubBlobStore{url: "https://bucket.s3.amazonaws.com/media/x?signed"},
	})

	t.Run("delegates to backend", func(t *testing.T) {
		url, err := s.MediaURL(ctx, "media/x", "x.png", "s3")
		require.NoError(t, err)
		assert.Equal(t, "https://bucket.s3.amazonaws.com/media/x?signed", url)
	})

	t.Run("unknown backend is an error", func(t *testing.T) {
		_, err := s.MediaURL(ctx, "media/x", "x.png", "gcs")
		assert.Error(t, err)
	})
}
