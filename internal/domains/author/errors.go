package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")

	// ErrAuthorHasBooks rejects deletion while books still reference the row.
	ErrAuthorHasBooks = errors.New("cannot delete author with existing books")
)
