package fetch

import "ewintr.nl/vidtweet/model"

type Metadata struct {
	Title       string
	Description string
	Duration    string
	PublishedAt string
}

type MetadataFetcher interface {
	FetchMetadata(ytID model.YoutubeVideoID) (Metadata, error)
}
