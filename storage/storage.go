package storage

import "ewintr.nl/vidtweet/model"

// MarkerRepository persists the id of the last video that was successfully
// posted about. Last returns an empty id when no marker was ever written.
type MarkerRepository interface {
	Last() (model.YoutubeVideoID, error)
	Save(id model.YoutubeVideoID) error
}
