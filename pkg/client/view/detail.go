package view

import (
	"context"
	"sync"
)

// Mode is what the detail controller is doing with its record.
type Mode int

const (
	// ModeCreate edits a blank draft for a record that does not exist yet.
	ModeCreate Mode = iota
	// ModeView shows a fetched record read-only.
	ModeView
	// ModeEdit edits a draft seeded from the fetched record.
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	default:
		return "view"
	}
}

// DetailStore is the subset of a resource API the detail controller needs.
// I is the write payload, T the entity.
type DetailStore[T any, I any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, in I) (*T, error)
	Update(ctx context.Context, id int64, in I) (*T, error)
}

// DetailController manages one record across view, edit and create. The
// fetched record is the source of truth; the draft is working state that
// Cancel throws away and Save commits.
type DetailController[T any, I any] struct {
	store    DetailStore[T, I]
	validate func(I) error

	mu     sync.RWMutex
	mode   Mode
	id     int64
	record *T
	draft  I
}

// NewDetailController starts in create mode with a zero draft.
func NewDetailController[T any, I any](store DetailStore[T, I]) *DetailController[T, I] {
	return &DetailController[T, I]{store: store, mode: ModeCreate}
}

// SetValidator installs a draft check that runs before Save hits the server.
// Catches missing required fields without a round trip.
func (d *DetailController[T, I]) SetValidator(validate func(I) error) {
	d.validate = validate
}

// Mode returns the current mode.
func (d *DetailController[T, I]) Mode() Mode {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mode
}

// Record returns the last fetched or saved record, nil in create mode
// before the first save.
func (d *DetailController[T, I]) Record() *T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.record
}

// Draft returns the current draft payload.
func (d *DetailController[T, I]) Draft() I {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.draft
}

// SetDraft replaces the draft. Only meaningful in create or edit mode.
func (d *DetailController[T, I]) SetDraft(draft I) {
	d.mu.Lock()
	d.draft = draft
	d.mu.Unlock()
}

// Open fetches the record and switches to view mode.
func (d *DetailController[T, I]) Open(ctx context.Context, id int64) error {
	record, err := d.store.Get(ctx, id)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.mode = ModeView
	d.id = id
	d.record = record
	var zero I
	d.draft = zero
	d.mu.Unlock()
	return nil
}

// Edit switches from view to edit mode, seeding the draft.
func (d *DetailController[T, I]) Edit(seed I) {
	d.mu.Lock()
	if d.mode == ModeView {
		d.mode = ModeEdit
		d.draft = seed
	}
	d.mu.Unlock()
}

// Cancel discards the draft. In edit mode the controller falls back to
// viewing the fetched record; in create mode the draft is simply reset.
func (d *DetailController[T, I]) Cancel() {
	d.mu.Lock()
	var zero I
	d.draft = zero
	if d.mode == ModeEdit {
		d.mode = ModeView
	}
	d.mu.Unlock()
}

// Save commits the draft: create mode inserts, edit mode updates. On
// success the server's copy of the record replaces the local one and the
// controller moves to view mode. On failure the draft is kept so the user
// can correct and retry.
func (d *DetailController[T, I]) Save(ctx context.Context) (*T, error) {
	d.mu.RLock()
	mode := d.mode
	id := d.id
	draft := d.draft
	d.mu.RUnlock()

	if mode != ModeView && d.validate != nil {
		if err := d.validate(draft); err != nil {
			return nil, err
		}
	}

	var (
		record *T
		err    error
	)
	switch mode {
	case ModeCreate:
		record, err = d.store.Create(ctx, draft)
	case ModeEdit:
		record, err = d.store.Update(ctx, id, draft)
	default:
		return d.Record(), nil
	}
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.mode = ModeView
	d.record = record
	d.id = recordID(record, id)
	var zero I
	d.draft = zero
	d.mu.Unlock()
	return record, nil
}

// recordID pulls the id off saved entities that expose one, falling back
// to the id we already had.
func recordID[T any](record *T, fallback int64) int64 {
	if ider, ok := any(record).(interface{ EntityID() int64 }); ok {
		return ider.EntityID()
	}
	return fallback
}
