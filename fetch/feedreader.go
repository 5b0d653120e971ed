package fetch

import "ewintr.nl/vidtweet/model"

// FeedReader returns the newest entry of the channel feed, or nil when the
// feed has no entries.
type FeedReader interface {
	Latest() (*model.Video, error)
}
