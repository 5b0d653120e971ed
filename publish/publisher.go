package publish

import "context"

// Publisher posts a summary with a link to a social platform and returns
// the platform assigned post id.
type Publisher interface {
	Publish(ctx context.Context, text, link string) (string, error)
}
