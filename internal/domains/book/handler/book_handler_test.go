package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/book"
	"library-catalog/internal/domains/publisher"
)

// filterCaptureService records the filter the handler builds from the
// query string.
type filterCaptureService struct {
	lastFilter book.Filter
	expanded   map[int64]*book.BookWithRelations
}

func (s *filterCaptureService) Create(context.Context, *book.CreateBookRequest) (*book.Book, error) {
	panic("not used")
}

func (s *filterCaptureService) GetByID(_ context.Context, id int64) (*book.BookWithRelations, error) {
	b, ok := s.expanded[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (s *filterCaptureService) List(_ context.Context, filter book.Filter) ([]book.BookWithRelations, int64, error) {
	s.lastFilter = filter
	return nil, 0, nil
}

func (s *filterCaptureService) Update(context.Context, int64, *book.UpdateBookRequest) (*book.Book, error) {
	panic("not used")
}

func (s *filterCaptureService) Delete(context.Context, int64) error {
	panic("not used")
}

func setupBookRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(svc)

	r := gin.New()
	r.GET("/books", h.List)
	r.GET("/books/:id", h.Get)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookListQueryParsing(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		svc := &filterCaptureService{}
		r := setupBookRouter(svc)

		w := get(r, "/books")
		require.Equal(t, http.StatusOK, w.Code)

		f := svc.lastFilter
		assert.Equal(t, "id", f.SortBy)
		assert.Equal(t, "asc", f.Order)
		assert.Empty(t, f.Title)
		assert.Nil(t, f.AuthorID)
		assert.Nil(t, f.PublisherID)
		assert.Equal(t, 1, f.Page.Page)
		assert.Equal(t, 10, f.Page.PerPage)
	})

	t.Run("all filters", func(t *testing.T) {
		svc := &filterCaptureService{}
		r := setupBookRouter(svc)

		get(r, "/books?title=earthsea&author_id=3&publisher_id=9&sort_by=title&order=desc&page=2&limit=5")

		f := svc.lastFilter
		assert.Equal(t, "earthsea", f.Title)
		require.NotNil(t, f.AuthorID)
		assert.Equal(t, int64(3), *f.AuthorID)
		require.NotNil(t, f.PublisherID)
		assert.Equal(t, int64(9), *f.PublisherID)
		assert.Equal(t, "title", f.SortBy)
		assert.Equal(t, "desc", f.Order)
		assert.Equal(t, 2, f.Page.Page)
		assert.Equal(t, 5, f.Page.PerPage)
	})

	t.Run("title wins over legacy search", func(t *testing.T) {
		svc := &filterCaptureService{}
		r := setupBookRouter(svc)

		get(r, "/books?title=canonical&search=legacy")
		assert.Equal(t, "canonical", svc.lastFilter.Title)
	})

	t.Run("non numeric reference filter is ignored", func(t *testing.T) {
		svc := &filterCaptureService{}
		r := setupBookRouter(svc)

		get(r, "/books?author_id=abc")
		assert.Nil(t, svc.lastFilter.AuthorID)
	})
}

func TestBookGetExpandsRelations(t *testing.T) {
	svc := &filterCaptureService{expanded: map[int64]*book.BookWithRelations{
		5: {
			Book:      book.Book{ID: 5, Title: "The Dispossessed", AuthorID: 1, PublisherID: 2},
			Author:    author.Author{ID: 1, Name: "Ursula K. Le Guin"},
			Publisher: publisher.Publisher{ID: 2, Name: "Harper & Row"},
		},
	}}
	r := setupBookRouter(svc)

	t.Run("found includes author and publisher objects", func(t *testing.T) {
		w := get(r, "/books/5")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body, "author")
		assert.Contains(t, body, "publisher")

		var a author.Author
		require.NoError(t, json.Unmarshal(body["author"], &a))
		assert.Equal(t, "Ursula K. Le Guin", a.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := get(r, "/books/404")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Book not found"}`, w.Body.String())
	})
}
