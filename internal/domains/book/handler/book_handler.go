package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/request"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/validation"
	"library-catalog/pkg/pagination"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// List - GET /books?page&limit&title|search&author_id&publisher_id&sort_by&order
func (h *BookHandler) List(c *gin.Context) {
	filter := book.Filter{
		Title:       request.FilterParam(c, "title", "search"),
		AuthorID:    request.OptionalInt64(c, "author_id"),
		PublisherID: request.OptionalInt64(c, "publisher_id"),
		SortBy:      c.DefaultQuery("sort_by", "id"),
		Order:       c.DefaultQuery("order", "asc"),
		Page:        request.ParsePage(c),
	}

	books, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, pagination.NewPage(books, len(books), total, filter.Page))
}

// Get - GET /books/:id (author/publisher expanded)
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.NotFound(c, "Book not found")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
			return
		}
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, b)
}

// Create - POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		var ve *validation.Error
		if errors.As(err, &ve) {
			response.ValidationFailed(c, ve.Errors)
			return
		}
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update - PUT /books/:id (partial semantics)
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.NotFound(c, "Book not found")
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
			return
		}
		var ve *validation.Error
		if errors.As(err, &ve) {
			response.ValidationFailed(c, ve.Errors)
			return
		}
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete - DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.NotFound(c, "Book not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Message(c, http.StatusOK, "Book deleted")
}
