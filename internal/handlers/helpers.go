package handlers

import (
	"errors"
	"net/http"

	"progression-service/internal/repository"
	"progression-service/internal/service"

	"github.com/gin-gonic/gin"
)

func respondSuccess(c *gin.Context, code int, data gin.H) {
	c.JSON(code, gin.H{
		"status": "success",
		"data":   data,
	})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "error",
		"message": message,
	})
}

// respondServiceError maps service/repository errors onto the stable
// status codes the API promises.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(c, http.StatusNotFound, "No document found with that ID")
	case errors.Is(err, service.ErrAlreadyCompleted):
		respondError(c, http.StatusBadRequest, "Stage already completed")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, service.ErrUsernameTaken):
		respondError(c, http.StatusBadRequest, "Username already taken")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Incorrect email or password")
	default:
		respondError(c, http.StatusInternalServerError, "Something went wrong")
	}
}
