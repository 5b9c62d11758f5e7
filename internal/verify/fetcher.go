// Package verify implements the label verification engine.
package verify

import (
	"context"
	"errors"
)

// LabelFetcher retrieves the current label names of a single item. One call
// performs one lookup against the backing tracker; a successful fetch always
// returns a non-nil slice, so an item without labels is an empty list, never
// an absent one.
type LabelFetcher interface {
	FetchLabels(ctx context.Context, number int) ([]string, error)
}

// ErrNotFound reports that an item does not exist or is not accessible.
// Fetchers wrap it so that callers can separate missing items from transient
// failures with errors.Is.
var ErrNotFound = errors.New("item not found")

// MaxErrorDetail bounds how much of an API error is carried into failure
// reasons.
const MaxErrorDetail = 100

// TruncateDetail shortens an error detail to at most MaxErrorDetail bytes.
func TruncateDetail(detail string) string {
	if len(detail) <= MaxErrorDetail {
		return detail
	}
	return detail[:MaxErrorDetail] + "..."
}
