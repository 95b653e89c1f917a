package service

import (
	"context"

	"progression-service/internal/models"
)

type ResultService struct {
	Results ResultStore
}

func NewResultService(results ResultStore) *ResultService {
	return &ResultService{Results: results}
}

func (s *ResultService) GetResultsByUser(ctx context.Context, userID string) ([]models.Result, error) {
	return s.Results.FindByUser(ctx, userID)
}

func (s *ResultService) GetResultsByQuest(ctx context.Context, questID string) ([]models.Result, error) {
	return s.Results.FindByQuest(ctx, questID)
}
