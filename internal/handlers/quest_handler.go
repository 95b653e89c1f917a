package handlers

import (
	"net/http"

	"progression-service/internal/middleware"
	"progression-service/internal/models"
	"progression-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type QuestHandler struct {
	Service *service.QuestService
}

func NewQuestHandler(s *service.QuestService) *QuestHandler {
	return &QuestHandler{Service: s}
}

// ListQuests lists quest summaries. Answer keys never leave the server;
// the taken flag reflects the requesting user's prior results.
func (h *QuestHandler) ListQuests(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	quests, err := h.Service.ListQuestsForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"results": len(quests), "quests": quests})
}

func (h *QuestHandler) GetQuest(c *gin.Context) {
	quest, err := h.Service.GetQuestForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"quest": quest})
}

// SubmitQuest grades the authenticated user's responses.
func (h *QuestHandler) SubmitQuest(c *gin.Context) {
	var req models.SubmitQuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	user, result, err := h.Service.SubmitQuest(c.Request.Context(), userID, c.Param("id"), req.UserResponses)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{
		"result": result,
		"user":   user,
	})
}

func (h *QuestHandler) GetQuestAdmin(c *gin.Context) {
	quest, err := h.Service.GetQuest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"quest": quest})
}

func (h *QuestHandler) CreateQuest(c *gin.Context) {
	var quest models.Quest
	if err := c.ShouldBindJSON(&quest); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Service.CreateQuest(c.Request.Context(), &quest); err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"quest": quest})
}

func (h *QuestHandler) UpdateQuest(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Service.UpdateQuest(c.Request.Context(), c.Param("id"), update); err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "updated"})
}

func (h *QuestHandler) DeleteQuest(c *gin.Context) {
	if err := h.Service.DeleteQuest(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, gin.H{})
}
