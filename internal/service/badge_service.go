package service

import (
	"context"

	"progression-service/internal/models"
)

type BadgeService struct {
	Badges BadgeStore
}

func NewBadgeService(badges BadgeStore) *BadgeService {
	return &BadgeService{Badges: badges}
}

func (s *BadgeService) GetBadge(ctx context.Context, id string) (*models.Badge, error) {
	return s.Badges.FindByID(ctx, id)
}

func (s *BadgeService) ListBadges(ctx context.Context) ([]models.Badge, error) {
	return s.Badges.FindAll(ctx)
}

func (s *BadgeService) CreateBadge(ctx context.Context, badge *models.Badge) error {
	return s.Badges.Create(ctx, badge)
}
