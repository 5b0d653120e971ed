package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"ewintr.nl/vidtweet/model"
	"ewintr.nl/vidtweet/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMarkerLast(t *testing.T) {
	for _, tc := range []struct {
		name    string
		content string
		write   bool
		exp     model.YoutubeVideoID
	}{
		{
			name: "missing file is no marker",
		},
		{
			name:    "plain id",
			content: "abc123",
			write:   true,
			exp:     "abc123",
		},
		{
			name:    "trailing newline is trimmed",
			content: "abc123\n",
			write:   true,
			exp:     "abc123",
		},
		{
			name:  "empty file",
			write: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "last_video_id.txt")
			if tc.write {
				require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))
			}

			last, err := storage.NewFileMarker(path).Last()
			require.NoError(t, err)
			assert.Equal(t, tc.exp, last)
		})
	}
}

func TestFileMarkerSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_video_id.txt")
	repo := storage.NewFileMarker(path)

	require.NoError(t, repo.Save("xyz789"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "xyz789", string(data))

	// replaces the previous value
	require.NoError(t, repo.Save("abc123"))
	last, err := repo.Last()
	require.NoError(t, err)
	assert.Equal(t, model.YoutubeVideoID("abc123"), last)
}
