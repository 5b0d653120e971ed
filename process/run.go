package process

import (
	"context"
	"errors"
	"fmt"

	"ewintr.nl/vidtweet/fetch"
	"ewintr.nl/vidtweet/model"
	"ewintr.nl/vidtweet/publish"
	"ewintr.nl/vidtweet/storage"
	"golang.org/x/exp/slog"
)

// Outcome tells how a run ended. Every value is a normal termination, the
// process does not fail on backend errors.
type Outcome string

const (
	OutcomeFeedUnavailable  Outcome = "feed unavailable"
	OutcomeNoVideo          Outcome = "no video in feed"
	OutcomeAlreadyProcessed Outcome = "already processed"
	OutcomeSummarizeFailed  Outcome = "summarize failed"
	OutcomePublishFailed    Outcome = "publish failed"
	OutcomeMarkerNotSaved   Outcome = "published, but marker not saved"
	OutcomeDone             Outcome = "done"
)

// Run walks one video through the pipeline: newest feed entry, new or not,
// transcript or fallback content, summary, post, marker. The marker is
// only advanced after a successful post, so a failed run is retried on the
// next invocation.
type Run struct {
	markerRepo storage.MarkerRepository
	feedReader fetch.FeedReader
	transcript fetch.TranscriptFetcher
	metadata   fetch.MetadataFetcher
	summary    fetch.SummaryFetcher
	publisher  publish.Publisher
	logger     *slog.Logger
}

func NewRun(markerRepo storage.MarkerRepository, feedReader fetch.FeedReader, transcript fetch.TranscriptFetcher, metadata fetch.MetadataFetcher, summary fetch.SummaryFetcher, publisher publish.Publisher, logger *slog.Logger) *Run {
	return &Run{
		markerRepo: markerRepo,
		feedReader: feedReader,
		transcript: transcript,
		metadata:   metadata,
		summary:    summary,
		publisher:  publisher,
		logger:     logger,
	}
}

func (r *Run) Do(ctx context.Context) Outcome {
	video, err := r.feedReader.Latest()
	if err != nil {
		r.logger.Error("unable to read feed", err)
		return OutcomeFeedUnavailable
	}
	if video == nil {
		r.logger.Info("no videos in feed")
		return OutcomeNoVideo
	}

	last, err := r.markerRepo.Last()
	if err != nil {
		// a lost marker means processing the newest video as if this
		// were the first run
		r.logger.Error("unable to read marker, assuming none", err)
		last = ""
	}
	r.logger.Info("checked feed", slog.String("latest", string(video.YoutubeID)), slog.String("last", string(last)))
	if video.YoutubeID == last {
		r.logger.Info("newest video already processed")
		return OutcomeAlreadyProcessed
	}

	content := r.content(ctx, video)

	summary, err := r.summary.FetchSummary(ctx, video.Title, content)
	if err != nil {
		r.logger.Error("unable to summarize", err, slog.String("video", string(video.YoutubeID)))
		return OutcomeSummarizeFailed
	}
	r.logger.Info("generated summary", slog.String("summary", summary))

	postID, err := r.publisher.Publish(ctx, summary, video.Link)
	if err != nil {
		r.logger.Error("unable to publish", err, slog.String("video", string(video.YoutubeID)))
		return OutcomePublishFailed
	}
	r.logger.Info("published post", slog.String("post", postID), slog.String("video", string(video.YoutubeID)))

	if err := r.markerRepo.Save(video.YoutubeID); err != nil {
		// the post is out, so only report. the next run may double-post.
		r.logger.Error("unable to save marker", err, slog.String("video", string(video.YoutubeID)))
		return OutcomeMarkerNotSaved
	}

	return OutcomeDone
}

// content is the transcript when there is one, otherwise the composed
// title and description of the feed entry.
func (r *Run) content(ctx context.Context, video *model.Video) string {
	transcript, err := r.transcript.FetchTranscript(ctx, video.YoutubeID)
	switch {
	case errors.Is(err, fetch.ErrNoTranscript):
		r.logger.Info("no transcript, falling back to description", slog.String("video", string(video.YoutubeID)))
	case err != nil:
		r.logger.Error("unable to fetch transcript, falling back to description", err, slog.String("video", string(video.YoutubeID)))
	default:
		return transcript
	}

	description := video.Description
	if description == "" && r.metadata != nil {
		md, err := r.metadata.FetchMetadata(video.YoutubeID)
		if err != nil {
			r.logger.Error("unable to fetch metadata", err, slog.String("video", string(video.YoutubeID)))
		} else {
			description = md.Description
		}
	}

	return fmt.Sprintf("제목: %s\n\n설명: %s", video.Title, description)
}
