package sentence

import "github.com/Fallatori/Mandarin-Language-Studio/internal/domain"

// BulkError records one rejected bulk item with the offending text.
type BulkError struct {
	Text    string
	Message string
}

// BulkResult partitions a bulk upload into outcomes. Items are processed
// independently: one failure never aborts the rest.
type BulkResult struct {
	Added   []*domain.Sentence
	Skipped []string
	Errors  []BulkError
}
