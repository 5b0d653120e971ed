package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"ewintr.nl/vidtweet/model"
)

// FileMarker keeps the marker in a plain text file that holds the raw
// video id and nothing else.
type FileMarker struct {
	path string
}

func NewFileMarker(path string) *FileMarker {
	return &FileMarker{path: path}
}

func (f *FileMarker) Last() (model.YoutubeVideoID, error) {
	data, err := os.ReadFile(f.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("could not read marker file: %w", err)
	}

	return model.YoutubeVideoID(strings.TrimSpace(string(data))), nil
}

func (f *FileMarker) Save(id model.YoutubeVideoID) error {
	if err := os.WriteFile(f.path, []byte(id), 0644); err != nil {
		return fmt.Errorf("could not write marker file: %w", err)
	}

	return nil
}
