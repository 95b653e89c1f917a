package service

import (
	"context"

	"progression-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type CharacterService struct {
	Characters CharacterStore
}

func NewCharacterService(characters CharacterStore) *CharacterService {
	return &CharacterService{Characters: characters}
}

func (s *CharacterService) GetCharacter(ctx context.Context, id string) (*models.Character, error) {
	return s.Characters.FindByID(ctx, id)
}

func (s *CharacterService) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return s.Characters.FindAll(ctx)
}

func (s *CharacterService) CreateCharacter(ctx context.Context, character *models.Character) error {
	return s.Characters.Create(ctx, character)
}

func (s *CharacterService) UpdateCharacter(ctx context.Context, id string, update bson.M) error {
	return s.Characters.Update(ctx, id, update)
}

func (s *CharacterService) DeleteCharacter(ctx context.Context, id string) error {
	return s.Characters.Delete(ctx, id)
}
