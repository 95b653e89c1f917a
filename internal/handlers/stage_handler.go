package handlers

import (
	"net/http"

	"progression-service/internal/middleware"
	"progression-service/internal/models"
	"progression-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type StageHandler struct {
	Service *service.StageService
}

func NewStageHandler(s *service.StageService) *StageHandler {
	return &StageHandler{Service: s}
}

// ListStages returns either the raw stage catalog or, when a zone is
// given, that zone's stages classified for the requesting user.
func (h *StageHandler) ListStages(c *gin.Context) {
	zone := c.Query("zone")
	if zone == "" {
		stages, err := h.Service.ListStages(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondSuccess(c, http.StatusOK, gin.H{"results": len(stages), "stages": stages})
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	classified, err := h.Service.ListZoneForUser(c.Request.Context(), zone, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"results": len(classified), "stages": classified})
}

func (h *StageHandler) GetStage(c *gin.Context) {
	stage, err := h.Service.GetStage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"stage": stage})
}

// CompleteStage marks the stage done for the authenticated user and
// reports the progression outcome.
func (h *StageHandler) CompleteStage(c *gin.Context) {
	var req models.CompleteStageRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	userID := c.GetString(middleware.ContextUserID)
	user, outcome, err := h.Service.CompleteStage(c.Request.Context(), userID, c.Param("id"), req.Bonus)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	nextStageID := ""
	if outcome.NextStage != nil {
		nextStageID = outcome.NextStage.ID
	}
	respondSuccess(c, http.StatusOK, gin.H{
		"user":      user,
		"nextStage": nextStageID,
		"levelUp":   models.LevelUpInfo{Flag: outcome.LevelUp, Level: outcome.Level},
		"earnBadge": models.EarnBadgeInfo{Flag: outcome.EarnedBadge != nil, Badge: outcome.EarnedBadge},
	})
}

func (h *StageHandler) CreateStage(c *gin.Context) {
	var stage models.Stage
	if err := c.ShouldBindJSON(&stage); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Service.CreateStage(c.Request.Context(), &stage); err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"stage": stage})
}

func (h *StageHandler) UpdateStage(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Service.UpdateStage(c.Request.Context(), c.Param("id"), update); err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "updated"})
}

func (h *StageHandler) DeleteStage(c *gin.Context) {
	if err := h.Service.DeleteStage(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, gin.H{})
}
