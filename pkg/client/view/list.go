package view

import (
	"context"
	"sync"
	"sync/atomic"

	"library-catalog/pkg/client"
)

// Fetcher loads one page of results for the given options.
type Fetcher[T any] func(ctx context.Context, opts client.ListOptions) (*client.Page[T], error)

// ListController drives a paginated, filterable listing. Fetches may be
// issued concurrently (e.g. a filter keystroke while a page change is in
// flight); each fetch is tagged with an increasing sequence number and a
// response is applied only if no newer fetch has started since. Late
// responses from superseded fetches are discarded.
type ListController[T any] struct {
	fetch Fetcher[T]

	seq atomic.Uint64

	mu      sync.RWMutex
	opts    client.ListOptions
	page    *client.Page[T]
	loading bool
	err     error
}

// NewListController starts at page 1 with no filters.
func NewListController[T any](fetch Fetcher[T]) *ListController[T] {
	return &ListController[T]{
		fetch: fetch,
		opts:  client.ListOptions{Page: 1},
	}
}

// Page returns the most recently applied result, nil before the first
// successful load.
func (l *ListController[T]) Page() *client.Page[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.page
}

// Loading reports whether a fetch is outstanding.
func (l *ListController[T]) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}

// Err returns the error from the most recent settled fetch, nil on success.
func (l *ListController[T]) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// Options returns the current paging and filter options.
func (l *ListController[T]) Options() client.ListOptions {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.opts
}

// Load fetches with the current options.
func (l *ListController[T]) Load(ctx context.Context) error {
	l.mu.RLock()
	opts := l.opts
	l.mu.RUnlock()
	return l.run(ctx, opts)
}

// SetPage moves to the given page and refetches.
func (l *ListController[T]) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	l.mu.Lock()
	l.opts.Page = page
	opts := l.opts
	l.mu.Unlock()
	return l.run(ctx, opts)
}

// SetFilter replaces the filter options, resets to page 1 and refetches.
// The page number in opts is ignored.
func (l *ListController[T]) SetFilter(ctx context.Context, opts client.ListOptions) error {
	opts.Page = 1
	l.mu.Lock()
	l.opts = opts
	l.mu.Unlock()
	return l.run(ctx, opts)
}

// NextPage advances one page if the current result says one exists.
func (l *ListController[T]) NextPage(ctx context.Context) error {
	l.mu.RLock()
	page := l.opts.Page
	last := page
	if l.page != nil {
		last = l.page.LastPage
	}
	l.mu.RUnlock()
	if page >= last {
		return nil
	}
	return l.SetPage(ctx, page+1)
}

// PrevPage goes back one page, stopping at page 1.
func (l *ListController[T]) PrevPage(ctx context.Context) error {
	l.mu.RLock()
	page := l.opts.Page
	l.mu.RUnlock()
	if page <= 1 {
		return nil
	}
	return l.SetPage(ctx, page-1)
}

func (l *ListController[T]) run(ctx context.Context, opts client.ListOptions) error {
	seq := l.seq.Add(1)

	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()

	page, err := l.fetch(ctx, opts)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.seq.Load() != seq {
		// A newer fetch started while this one was in flight; whatever it
		// returns wins.
		return nil
	}
	l.loading = false
	l.err = err
	if err != nil {
		return err
	}
	l.page = page
	return nil
}
