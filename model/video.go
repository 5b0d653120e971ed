package model

type YoutubeVideoID string

// Video is one entry from the channel feed. It is assembled by a feed
// reader and does not change during a run.
type Video struct {
	YoutubeID   YoutubeVideoID
	Title       string
	Link        string
	Description string
}
