package fetch

import (
	"fmt"

	"ewintr.nl/vidtweet/model"
	"google.golang.org/api/youtube/v3"
)

type Youtube struct {
	Client *youtube.Service
}

func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{Client: client}
}

func (y *Youtube) FetchMetadata(ytID model.YoutubeVideoID) (Metadata, error) {
	call := y.Client.Videos.
		List([]string{"snippet", "contentDetails"}).
		Id(string(ytID))

	response, err := call.Do()
	if err != nil {
		return Metadata{}, err
	}
	if len(response.Items) == 0 {
		return Metadata{}, fmt.Errorf("video %s is unknown", ytID)
	}

	item := response.Items[0]
	md := Metadata{}
	if item.Snippet != nil {
		md.Title = item.Snippet.Title
		md.Description = item.Snippet.Description
		md.PublishedAt = item.Snippet.PublishedAt
	}
	if item.ContentDetails != nil {
		md.Duration = item.ContentDetails.Duration
	}

	return md, nil
}
