package fetch

import (
	"fmt"
	"strings"

	"ewintr.nl/vidtweet/model"
	"miniflux.app/client"
)

type MinifluxInfo struct {
	Endpoint string
	ApiKey   string
	FeedID   int64
}

// Miniflux reads the channel feed through a miniflux instance instead of
// fetching the feed url directly.
type Miniflux struct {
	client *client.Client
	feedID int64
}

func NewMiniflux(mflInfo MinifluxInfo) *Miniflux {
	return &Miniflux{
		client: client.New(mflInfo.Endpoint, mflInfo.ApiKey),
		feedID: mflInfo.FeedID,
	}
}

func (m *Miniflux) Latest() (*model.Video, error) {
	result, err := m.client.Entries(&client.Filter{
		FeedID:    m.feedID,
		Order:     "published_at",
		Direction: "desc",
		Limit:     1,
	})
	if err != nil {
		return nil, fmt.Errorf("could not fetch entries: %w", err)
	}
	if len(result.Entries) == 0 {
		return nil, nil
	}

	entry := result.Entries[0]
	video := &model.Video{
		YoutubeID:   model.YoutubeVideoID(strings.TrimPrefix(entry.URL, "https://www.youtube.com/watch?v=")),
		Title:       entry.Title,
		Link:        entry.URL,
		Description: entry.Content,
	}
	if video.YoutubeID == "" || video.Link == "" {
		return nil, fmt.Errorf("entry misses id or link")
	}

	return video, nil
}
