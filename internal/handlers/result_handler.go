package handlers

import (
	"net/http"

	"progression-service/internal/middleware"
	"progression-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	Service *service.ResultService
}

func NewResultHandler(s *service.ResultService) *ResultHandler {
	return &ResultHandler{Service: s}
}

// ListMyResults returns the authenticated user's attempt history, newest
// first.
func (h *ResultHandler) ListMyResults(c *gin.Context) {
	results, err := h.Service.GetResultsByUser(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"results": len(results), "attempts": results})
}

func (h *ResultHandler) ListQuestResults(c *gin.Context) {
	results, err := h.Service.GetResultsByQuest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"results": len(results), "attempts": results})
}
