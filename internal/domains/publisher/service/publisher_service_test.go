package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/publisher"
	"library-catalog/internal/shared/validation"
)

// fakePublisherRepo is an in-memory publisher.Repository for service tests.
type fakePublisherRepo struct {
	nextID     int64
	publishers map[int64]publisher.Publisher
	// books counts referencing books per publisher id.
	books map[int64]int64
}

func newFakePublisherRepo() *fakePublisherRepo {
	return &fakePublisherRepo{
		nextID:     1,
		publishers: map[int64]publisher.Publisher{},
		books:      map[int64]int64{},
	}
}

func (r *fakePublisherRepo) Create(_ context.Context, p *publisher.Publisher) (*publisher.Publisher, error) {
	saved := *p
	saved.ID = r.nextID
	r.nextID++
	now := time.Now()
	saved.CreatedAt = now
	saved.UpdatedAt = now
	r.publishers[saved.ID] = saved
	return &saved, nil
}

func (r *fakePublisherRepo) GetByID(_ context.Context, id int64) (*publisher.Publisher, error) {
	p, ok := r.publishers[id]
	if !ok {
		return nil, publisher.ErrPublisherNotFound
	}
	return &p, nil
}

func (r *fakePublisherRepo) List(_ context.Context, filter publisher.Filter) ([]publisher.Publisher, int64, error) {
	var all []publisher.Publisher
	for _, p := range r.publishers {
		all = append(all, p)
	}
	return all, int64(len(all)), nil
}

func (r *fakePublisherRepo) Update(_ context.Context, p *publisher.Publisher) (*publisher.Publisher, error) {
	if _, ok := r.publishers[p.ID]; !ok {
		return nil, publisher.ErrPublisherNotFound
	}
	saved := *p
	saved.UpdatedAt = time.Now()
	r.publishers[saved.ID] = saved
	return &saved, nil
}

func (r *fakePublisherRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.publishers[id]; !ok {
		return publisher.ErrPublisherNotFound
	}
	if r.books[id] > 0 {
		return publisher.ErrPublisherHasBooks
	}
	delete(r.publishers, id)
	return nil
}

func (r *fakePublisherRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.publishers[id]
	return ok, nil
}

func (r *fakePublisherRepo) BookCount(_ context.Context, id int64) (int64, error) {
	return r.books[id], nil
}

func strPtr(s string) *string { return &s }

func TestPublisherCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("create then get returns the same publisher", func(t *testing.T) {
		repo := newFakePublisherRepo()
		svc := NewPublisherService(repo)

		created, err := svc.Create(ctx, &publisher.CreatePublisherRequest{
			Name:    "Tor Books",
			Address: strPtr("120 Broadway"),
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("blank name fails validation", func(t *testing.T) {
		repo := newFakePublisherRepo()
		svc := NewPublisherService(repo)

		_, err := svc.Create(ctx, &publisher.CreatePublisherRequest{Name: ""})

		var ve *validation.Error
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Errors, "name")
		assert.Empty(t, repo.publishers, "nothing may be inserted on validation failure")
	})
}

func TestPublisherUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("omitted fields are untouched", func(t *testing.T) {
		repo := newFakePublisherRepo()
		svc := NewPublisherService(repo)
		created, err := svc.Create(ctx, &publisher.CreatePublisherRequest{
			Name:    "Original Press",
			Address: strPtr("kept"),
		})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, &publisher.UpdatePublisherRequest{
			Name: strPtr("Renamed Press"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Press", updated.Name)
		require.NotNil(t, updated.Address)
		assert.Equal(t, "kept", *updated.Address)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := NewPublisherService(newFakePublisherRepo())
		_, err := svc.Update(ctx, 999, &publisher.UpdatePublisherRequest{Name: strPtr("x")})
		assert.ErrorIs(t, err, publisher.ErrPublisherNotFound)
	})
}

func TestPublisherDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("delete then get is not found", func(t *testing.T) {
		repo := newFakePublisherRepo()
		svc := NewPublisherService(repo)
		created, err := svc.Create(ctx, &publisher.CreatePublisherRequest{Name: "Gone Press"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, created.ID))

		_, err = svc.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, publisher.ErrPublisherNotFound)
	})

	t.Run("rejected while books reference the publisher", func(t *testing.T) {
		repo := newFakePublisherRepo()
		svc := NewPublisherService(repo)
		created, err := svc.Create(ctx, &publisher.CreatePublisherRequest{Name: "Referenced Press"})
		require.NoError(t, err)
		repo.books[created.ID] = 1

		err = svc.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, publisher.ErrPublisherHasBooks)

		_, err = svc.GetByID(ctx, created.ID)
		assert.NoError(t, err, "publisher must survive the rejected delete")
	})
}
