package providers

import (
	"context"

	"github.com/avatarneil/bracket.build/internal/domain/results"
)

// ResultProvider defines how upstream live playoff results are fetched and
// normalized onto bracket matchups. Implementations return one Result per
// real game they can correlate to a matchup and drop the rest.
type ResultProvider interface {
	FetchResults(ctx context.Context) ([]results.Result, error)
}
