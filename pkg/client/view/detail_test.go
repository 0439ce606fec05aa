package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/pkg/client"
)

// fakeAuthorStore is an in-memory DetailStore for authors.
type fakeAuthorStore struct {
	nextID  int64
	authors map[int64]client.Author
	getErr  error
}

func newFakeAuthorStore() *fakeAuthorStore {
	return &fakeAuthorStore{nextID: 1, authors: map[int64]client.Author{}}
}

func (s *fakeAuthorStore) Get(_ context.Context, id int64) (*client.Author, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	a, ok := s.authors[id]
	if !ok {
		return nil, &client.APIError{Status: 404, Message: "Author not found"}
	}
	return &a, nil
}

func (s *fakeAuthorStore) Create(_ context.Context, in client.AuthorInput) (*client.Author, error) {
	if in.Name == nil || *in.Name == "" {
		return nil, &client.APIError{
			Status:  422,
			Message: "The given data was invalid.",
			Fields:  map[string][]string{"name": {"cannot be blank"}},
		}
	}
	a := client.Author{ID: s.nextID, Name: *in.Name}
	if in.Bio != nil {
		a.Bio = in.Bio
	}
	s.nextID++
	s.authors[a.ID] = a
	return &a, nil
}

func (s *fakeAuthorStore) Update(_ context.Context, id int64, in client.AuthorInput) (*client.Author, error) {
	a, ok := s.authors[id]
	if !ok {
		return nil, &client.APIError{Status: 404, Message: "Author not found"}
	}
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Bio != nil {
		a.Bio = in.Bio
	}
	s.authors[id] = a
	return &a, nil
}

func strPtr(s string) *string { return &s }

func TestDetailCreateFlow(t *testing.T) {
	ctx := context.Background()
	store := newFakeAuthorStore()
	dc := NewDetailController[client.Author, client.AuthorInput](store)

	assert.Equal(t, ModeCreate, dc.Mode())
	assert.Nil(t, dc.Record())

	dc.SetDraft(client.AuthorInput{Name: strPtr("Fresh Author")})
	saved, err := dc.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Author", saved.Name)

	assert.Equal(t, ModeView, dc.Mode())
	require.NotNil(t, dc.Record())
	assert.Equal(t, saved.ID, dc.Record().ID)
}

func TestDetailCreateKeepsDraftOnFailure(t *testing.T) {
	ctx := context.Background()
	dc := NewDetailController[client.Author, client.AuthorInput](newFakeAuthorStore())

	dc.SetDraft(client.AuthorInput{})
	_, err := dc.Save(ctx)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ModeCreate, dc.Mode(), "a failed save must stay editable")
}

func TestDetailOpenEditCancel(t *testing.T) {
	ctx := context.Background()
	store := newFakeAuthorStore()
	created, err := store.Create(ctx, client.AuthorInput{Name: strPtr("Original"), Bio: strPtr("bio")})
	require.NoError(t, err)

	dc := NewDetailController[client.Author, client.AuthorInput](store)
	require.NoError(t, dc.Open(ctx, created.ID))
	assert.Equal(t, ModeView, dc.Mode())
	assert.Equal(t, "Original", dc.Record().Name)

	dc.Edit(client.AuthorInput{Name: strPtr("Original")})
	assert.Equal(t, ModeEdit, dc.Mode())

	dc.SetDraft(client.AuthorInput{Name: strPtr("Scribbles")})
	dc.Cancel()

	assert.Equal(t, ModeView, dc.Mode())
	assert.Equal(t, "Original", dc.Record().Name, "cancel must revert to the fetched record")

	// The store was never touched.
	fresh, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", fresh.Name)
}

func TestDetailEditSave(t *testing.T) {
	ctx := context.Background()
	store := newFakeAuthorStore()
	created, err := store.Create(ctx, client.AuthorInput{Name: strPtr("Before"), Bio: strPtr("kept")})
	require.NoError(t, err)

	dc := NewDetailController[client.Author, client.AuthorInput](store)
	require.NoError(t, dc.Open(ctx, created.ID))
	dc.Edit(client.AuthorInput{})
	dc.SetDraft(client.AuthorInput{Name: strPtr("After")})

	saved, err := dc.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "After", saved.Name)
	require.NotNil(t, saved.Bio)
	assert.Equal(t, "kept", *saved.Bio, "fields left out of the draft are untouched")
	assert.Equal(t, ModeView, dc.Mode())
}

func TestDetailOpenUnknown(t *testing.T) {
	dc := NewDetailController[client.Author, client.AuthorInput](newFakeAuthorStore())

	err := dc.Open(context.Background(), 404)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ModeCreate, dc.Mode(), "a failed open must not fake a loaded record")
}

func TestDetailValidatorBlocksSave(t *testing.T) {
	ctx := context.Background()
	store := newFakeAuthorStore()
	dc := NewDetailController[client.Author, client.AuthorInput](store)
	dc.SetValidator(func(in client.AuthorInput) error {
		if in.Name == nil {
			return assert.AnError
		}
		return nil
	})

	_, err := dc.Save(ctx)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, store.authors, "the server must not be called for a draft that fails locally")

	dc.SetDraft(client.AuthorInput{Name: strPtr("Valid")})
	_, err = dc.Save(ctx)
	assert.NoError(t, err)
}

func TestDetailEditOnlyFromView(t *testing.T) {
	dc := NewDetailController[client.Author, client.AuthorInput](newFakeAuthorStore())

	dc.Edit(client.AuthorInput{Name: strPtr("ignored")})
	assert.Equal(t, ModeCreate, dc.Mode(), "edit is only reachable from view mode")
}
