package fetch

import (
	"context"
	"errors"

	"ewintr.nl/vidtweet/model"
)

// ErrNoTranscript means no usable caption track exists for the video in
// the preferred language. The caller decides on a fallback.
var ErrNoTranscript = errors.New("no transcript available")

type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, ytID model.YoutubeVideoID) (string, error)
}
