package fetch

import (
	"fmt"
	"net/url"
	"strings"

	"ewintr.nl/vidtweet/model"
	"github.com/mmcdole/gofeed"
)

// RSSFeedReader reads a YouTube channel feed (videos.xml) directly.
type RSSFeedReader struct {
	feedURL string
	parser  *gofeed.Parser
}

func NewRSSFeedReader(feedURL string) *RSSFeedReader {
	return &RSSFeedReader{
		feedURL: feedURL,
		parser:  gofeed.NewParser(),
	}
}

func (r *RSSFeedReader) Latest() (*model.Video, error) {
	feed, err := r.parser.ParseURL(r.feedURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse feed: %w", err)
	}
	if len(feed.Items) == 0 {
		return nil, nil
	}

	item := feed.Items[0]
	video := &model.Video{
		YoutubeID:   videoID(item),
		Title:       item.Title,
		Link:        item.Link,
		Description: description(item),
	}
	if video.YoutubeID == "" || video.Link == "" {
		return nil, fmt.Errorf("feed entry misses id or link")
	}

	return video, nil
}

// videoID prefers the yt:videoId extension and falls back to the watch url.
func videoID(item *gofeed.Item) model.YoutubeVideoID {
	if ids, ok := item.Extensions["yt"]["videoId"]; ok && len(ids) > 0 {
		return model.YoutubeVideoID(ids[0].Value)
	}

	u, err := url.Parse(item.Link)
	if err != nil {
		return ""
	}
	if id := u.Query().Get("v"); id != "" {
		return model.YoutubeVideoID(id)
	}
	if u.Host == "youtu.be" {
		return model.YoutubeVideoID(strings.TrimPrefix(u.Path, "/"))
	}

	return ""
}

// description lives in the media:group extension on YouTube feeds.
func description(item *gofeed.Item) string {
	if groups, ok := item.Extensions["media"]["group"]; ok && len(groups) > 0 {
		if descs, ok := groups[0].Children["description"]; ok && len(descs) > 0 {
			return descs[0].Value
		}
	}

	return item.Description
}
