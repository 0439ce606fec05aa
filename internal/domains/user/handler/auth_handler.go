package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/user"
	"library-catalog/internal/shared/middleware"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/validation"
	"library-catalog/pkg/jwt"
)

type AuthHandler struct {
	service user.Service
}

func NewAuthHandler(svc user.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register - POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, token, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		var ve *validation.Error
		if errors.As(err, &ve) {
			response.ValidationFailed(c, ve.Errors)
			return
		}
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, user.AuthResponse{User: created, Token: token})
}

// Login - POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.InvalidCredentials(c)
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

	c.JSON(http.StatusOK, user.TokenResponse{Token: token})
}

// Logout - POST /logout (auth required)
func (h *AuthHandler) Logout(c *gin.Context) {
	v, exists := c.Get(middleware.CtxClaims)
	claims, ok := v.(*jwt.Claims)
	if !exists || !ok {
		response.Unauthenticated(c)
		return
	}

	h.service.Logout(c.Request.Context(), claims)
	response.Message(c, http.StatusOK, "Logged out successfully")
}

// Me - GET /me (auth required)
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	profile, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Valid token for a user that no longer exists.
			response.Unauthenticated(c)
			return
		}
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, profile)
}
