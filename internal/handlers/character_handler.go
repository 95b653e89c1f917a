package handlers

import (
	"net/http"

	"progression-service/internal/models"
	"progression-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type CharacterHandler struct {
	Service *service.CharacterService
}

func NewCharacterHandler(s *service.CharacterService) *CharacterHandler {
	return &CharacterHandler{Service: s}
}

func (h *CharacterHandler) ListCharacters(c *gin.Context) {
	characters, err := h.Service.ListCharacters(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"results": len(characters), "characters": characters})
}

func (h *CharacterHandler) GetCharacter(c *gin.Context) {
	character, err := h.Service.GetCharacter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"character": character})
}

func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	var character models.Character
	if err := c.ShouldBindJSON(&character); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Service.CreateCharacter(c.Request.Context(), &character); err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"character": character})
}

func (h *CharacterHandler) UpdateCharacter(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Service.UpdateCharacter(c.Request.Context(), c.Param("id"), update); err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "updated"})
}

func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	if err := h.Service.DeleteCharacter(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, gin.H{})
}
