package publisher

import "errors"

var (
	ErrPublisherNotFound = errors.New("publisher not found")

	// ErrPublisherHasBooks rejects deletion while books reference the row.
	ErrPublisherHasBooks = errors.New("cannot delete publisher with existing books")
)
