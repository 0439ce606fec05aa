package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/publisher"
	"library-catalog/internal/shared/request"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/validation"
	"library-catalog/pkg/pagination"
)

type PublisherHandler struct {
	service publisher.Service
}

func NewPublisherHandler(svc publisher.Service) *PublisherHandler {
	return &PublisherHandler{service: svc}
}

// List - GET /publishers?page&limit&name|search
func (h *PublisherHandler) List(c *gin.Context) {
	filter := publisher.Filter{
		Name: request.FilterParam(c, "name", "search"),
		Page: request.ParsePage(c),
	}

	publishers, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, pagination.NewPage(publishers, len(publishers), total, filter.Page))
}

// Get - GET /publishers/:id
func (h *PublisherHandler) Get(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.NotFound(c, "Publisher not found")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, publisher.ErrPublisherNotFound) {
			response.NotFound(c, "Publisher not found")
			return
		}
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, p)
}

// Create - POST /publishers
func (h *PublisherHandler) Create(c *gin.Context) {
	var req publisher.CreatePublisherRequest
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

// Update - PUT /publishers/:id (partial semantics)
func (h *PublisherHandler) Update(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.NotFound(c, "Publisher not found")
		return
	}

	var req publisher.UpdatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, publisher.ErrPublisherNotFound) {
			response.NotFound(c, "Publisher not found")
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

// Delete - DELETE /publishers/:id
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.NotFound(c, "Publisher not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, publisher.ErrPublisherNotFound):
			response.NotFound(c, "Publisher not found")
		case errors.Is(err, publisher.ErrPublisherHasBooks):
			response.Conflict(c, "Cannot delete publisher with existing books")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Message(c, http.StatusOK, "Publisher deleted")
}
