package handlers

import (
	"net/http"

	"progression-service/internal/models"
	"progression-service/internal/service"

	"github.com/gin-gonic/gin"
)

type BadgeHandler struct {
	Service *service.BadgeService
}

func NewBadgeHandler(s *service.BadgeService) *BadgeHandler {
	return &BadgeHandler{Service: s}
}

func (h *BadgeHandler) ListBadges(c *gin.Context) {
	badges, err := h.Service.ListBadges(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"results": len(badges), "badges": badges})
}

func (h *BadgeHandler) GetBadge(c *gin.Context) {
	badge, err := h.Service.GetBadge(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"badge": badge})
}

func (h *BadgeHandler) CreateBadge(c *gin.Context) {
	var badge models.Badge
	if err := c.ShouldBindJSON(&badge); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Service.CreateBadge(c.Request.Context(), &badge); err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"badge": badge})
}
