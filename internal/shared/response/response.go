package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Helpers producing the wire shapes the frontend client expects. Error bodies
// use "message" except for failed logins, which historically used "error".

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func BadRequest(c *gin.Context, msg string) {
	Message(c, http.StatusBadRequest, msg)
}

func NotFound(c *gin.Context, msg string) {
	Message(c, http.StatusNotFound, msg)
}

func Conflict(c *gin.Context, msg string) {
	Message(c, http.StatusConflict, msg)
}

func InternalError(c *gin.Context) {
	Message(c, http.StatusInternalServerError, "Internal server error")
}

// Unauthenticated is the guard response for missing/invalid/revoked tokens.
func Unauthenticated(c *gin.Context) {
	Message(c, http.StatusUnauthorized, "Unauthenticated.")
}

// InvalidCredentials never distinguishes unknown email from wrong password.
func InvalidCredentials(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
}

// ValidationFailed renders field-keyed validation messages.
func ValidationFailed(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "The given data was invalid.",
		"errors":  errs,
	})
}
