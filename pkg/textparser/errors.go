package textparser

import (
	"errors"
	"fmt"
)

// ErrInvalidTags indicates the tag configuration does not hold exactly
// an open and a close tag.
var ErrInvalidTags = errors.New("invalid tags")

// InvalidTagsError is returned by Parse when the configured tags do not
// contain exactly two entries.
type InvalidTagsError struct {
	// Count is the number of tags that were configured.
	Count int
}

// Error implements the error interface.
func (e *InvalidTagsError) Error() string {
	return fmt.Sprintf("expected 2 tags, got %d", e.Count)
}

// Unwrap returns ErrInvalidTags for errors.Is support.
func (e *InvalidTagsError) Unwrap() error {
	return ErrInvalidTags
}
