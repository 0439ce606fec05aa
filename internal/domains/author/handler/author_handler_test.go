package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/shared/validation"
)

// fakeAuthorService is a scriptable author.Service for handler tests.
type fakeAuthorService struct {
	lastFilter author.Filter

	authors map[int64]*author.Author
	listErr error
}

func newFakeAuthorService() *fakeAuthorService {
	return &fakeAuthorService{authors: map[int64]*author.Author{}}
}

func (s *fakeAuthorService) Create(_ context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if errs := req.Validate(); errs.Any() {
		return nil, validation.NewError(errs)
	}
	a := req.ToEntity()
	a.ID = int64(len(s.authors) + 1)
	s.authors[a.ID] = a
	return a, nil
}

func (s *fakeAuthorService) GetByID(_ context.Context, id int64) (*author.Author, error) {
	a, ok := s.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return a, nil
}

func (s *fakeAuthorService) List(_ context.Context, filter author.Filter) ([]author.Author, int64, error) {
	s.lastFilter = filter
	if s.listErr != nil {
		return nil, 0, s.listErr
	}
	var out []author.Author
	for _, a := range s.authors {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (s *fakeAuthorService) Update(_ context.Context, id int64, req *author.UpdateAuthorRequest) (*author.Author, error) {
	if errs := req.Validate(); errs.Any() {
		return nil, validation.NewError(errs)
	}
	a, ok := s.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	req.ApplyToEntity(a)
	return a, nil
}

func (s *fakeAuthorService) Delete(_ context.Context, id int64) error {
	a, ok := s.authors[id]
	if !ok {
		return author.ErrAuthorNotFound
	}
	if strings.Contains(a.Name, "referenced") {
		return author.ErrAuthorHasBooks
	}
	delete(s.authors, id)
	return nil
}

func setupRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc)

	r := gin.New()
	r.GET("/authors", h.List)
	r.POST("/authors", h.Create)
	r.GET("/authors/:id", h.Get)
	r.PUT("/authors/:id", h.Update)
	r.DELETE("/authors/:id", h.Delete)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthorListEnvelope(t *testing.T) {
	svc := newFakeAuthorService()
	svc.authors[1] = &author.Author{ID: 1, Name: "Solo"}
	r := setupRouter(svc)

	w := doRequest(r, http.MethodGet, "/authors?page=1&limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, key := range []string{"current_page", "data", "from", "to", "last_page", "per_page", "total"} {
		assert.Contains(t, body, key)
	}
}

func TestAuthorListFilterPrecedence(t *testing.T) {
	t.Run("name wins over search", func(t *testing.T) {
		svc := newFakeAuthorService()
		r := setupRouter(svc)

		doRequest(r, http.MethodGet, "/authors?name=canonical&search=legacy", "")
		assert.Equal(t, "canonical", svc.lastFilter.Name)
	})

	t.Run("search alone still filters", func(t *testing.T) {
		svc := newFakeAuthorService()
		r := setupRouter(svc)

		doRequest(r, http.MethodGet, "/authors?search=legacy", "")
		assert.Equal(t, "legacy", svc.lastFilter.Name)
	})
}

func TestAuthorCreateHandler(t *testing.T) {
	t.Run("valid body returns 201 with flat entity", func(t *testing.T) {
		r := setupRouter(newFakeAuthorService())

		w := doRequest(r, http.MethodPost, "/authors", `{"name":"New Author"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var got author.Author
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "New Author", got.Name)
		assert.NotZero(t, got.ID)
	})

	t.Run("validation failure returns 422 with field errors", func(t *testing.T) {
		r := setupRouter(newFakeAuthorService())

		w := doRequest(r, http.MethodPost, "/authors", `{"name":""}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body struct {
			Message string              `json:"message"`
			Errors  map[string][]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "The given data was invalid.", body.Message)
		assert.Contains(t, body.Errors, "name")
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		r := setupRouter(newFakeAuthorService())
		w := doRequest(r, http.MethodPost, "/authors", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthorGetHandler(t *testing.T) {
	svc := newFakeAuthorService()
	svc.authors[7] = &author.Author{ID: 7, Name: "Found"}
	r := setupRouter(svc)

	t.Run("found", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/authors/7", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/authors/99", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Author not found"}`, w.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/authors/abc", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthorDeleteHandler(t *testing.T) {
	t.Run("success message", func(t *testing.T) {
		svc := newFakeAuthorService()
		svc.authors[1] = &author.Author{ID: 1, Name: "Removable"}
		r := setupRouter(svc)

		w := doRequest(r, http.MethodDelete, "/authors/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Author deleted"}`, w.Body.String())
	})

	t.Run("referenced author returns 409", func(t *testing.T) {
		svc := newFakeAuthorService()
		svc.authors[1] = &author.Author{ID: 1, Name: "referenced author"}
		r := setupRouter(svc)

		w := doRequest(r, http.MethodDelete, "/authors/1", "")
		require.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"message":"Cannot delete author with existing books"}`, w.Body.String())
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		r := setupRouter(newFakeAuthorService())
		w := doRequest(r, http.MethodDelete, "/authors/5", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
