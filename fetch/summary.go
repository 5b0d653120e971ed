package fetch

import "context"

type SummaryFetcher interface {
	FetchSummary(ctx context.Context, title, content string) (string, error)
}
