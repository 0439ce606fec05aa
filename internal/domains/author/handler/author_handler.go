package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/shared/request"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/validation"
	"library-catalog/pkg/pagination"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// List - GET /authors?page&limit&name|search
func (h *AuthorHandler) List(c *gin.Context) {
	filter := author.Filter{
		Name: request.FilterParam(c, "name", "search"),
		Page: request.ParsePage(c),
	}

	authors, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, pagination.NewPage(authors, len(authors), total, filter.Page))
}

// Get - GET /authors/:id
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.NotFound(c, "Author not found")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
			return
		}
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, a)
}

// Create - POST /authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
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

// Update - PUT /authors/:id (partial semantics)
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.NotFound(c, "Author not found")
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
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

// Delete - DELETE /authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.NotFound(c, "Author not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, author.ErrAuthorNotFound):
			response.NotFound(c, "Author not found")
		case errors.Is(err, author.ErrAuthorHasBooks):
			response.Conflict(c, "Cannot delete author with existing books")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Message(c, http.StatusOK, "Author deleted")
}
