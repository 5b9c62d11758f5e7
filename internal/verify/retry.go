package verify

import (
	"context"
	"errors"
	"time"

	"github.com/danielolaszy/labelcheck/internal/logging"
)

// RetryingFetcher wraps a LabelFetcher and retries failed fetches with a
// linearly growing delay. Not-found results are returned immediately since
// retrying cannot make a missing item appear.
type RetryingFetcher struct {
	Fetcher  LabelFetcher
	Attempts int
	Delay    time.Duration
}

// FetchLabels fetches an item's labels, retrying transient failures up to
// the configured number of attempts. The wait between attempts honors the
// context.
func (r *RetryingFetcher) FetchLabels(ctx context.Context, number int) ([]string, error) {
	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		labels, err := r.Fetcher.FetchLabels(ctx, number)
		if err == nil {
			return labels, nil
		}
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		lastErr = err

		if attempt < attempts {
			logging.Warn("retrying label fetch",
				"item_number", number,
				"attempt", attempt,
				"error", err)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.Delay * time.Duration(attempt)):
			}
		}
	}

	return nil, lastErr
}
