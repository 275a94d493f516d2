package articles

import (
	"errors"
	"fmt"
)

// ErrNotConfigured reports that an operation ran before Configure.
var ErrNotConfigured = errors.New("source is not configured")

// ErrBatchSize reports a non-positive batch size.
var ErrBatchSize = errors.New("batch size must be positive")

// ErrNoDocuments reports an empty document collection. Without a first
// document there is nothing to derive a schema from.
var ErrNoDocuments = errors.New("document collection is empty")

// NoMatchError reports a document whose article id has no row in the
// reference table. It fails the whole stream: records yielded before the
// offending document remain valid.
type NoMatchError struct {
	ArticleID string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no reference row matches article %q", e.ArticleID)
}
