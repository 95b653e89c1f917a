package service

import (
	"context"
	"errors"
	"log"

	"progression-service/internal/cache"
	"progression-service/internal/event"
	"progression-service/internal/models"
	"progression-service/internal/progression"
	"progression-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type StageService struct {
	Users  UserStore
	Stages StageStore
	Badges BadgeStore
	Cache  *cache.StageCache
	Events EventPublisher
}

func NewStageService(users UserStore, stages StageStore, badges BadgeStore, stageCache *cache.StageCache, events EventPublisher) *StageService {
	return &StageService{Users: users, Stages: stages, Badges: badges, Cache: stageCache, Events: events}
}

// CompleteStageOutcome carries everything the completion response needs
// besides the updated user.
type CompleteStageOutcome struct {
	NextStage   *models.Stage
	LevelUp     bool
	Level       int
	EarnedBadge *models.Badge
}

// CompleteStage marks the stage done for the user: appends it to the
// completed set, grants its experience (doubled on bonus), recomputes the
// level, awards any milestone badge, and resolves the next stage of the
// zone. The user document is replaced in a single write; a repeat call
// fails with ErrAlreadyCompleted and changes nothing.
func (s *StageService) CompleteStage(ctx context.Context, userID, stageID string, bonus bool) (*models.User, *CompleteStageOutcome, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	stage, err := s.Stages.FindByID(ctx, stageID)
	if err != nil {
		return nil, nil, err
	}
	if user.HasCompletedStage(stage.ID) {
		return nil, nil, ErrAlreadyCompleted
	}

	gained := stage.Exp
	if bonus {
		gained *= 2
	}

	user.CompletedStages = append(user.CompletedStages, stage.ID)
	levelUp := grantExperience(user, gained)

	outcome := &CompleteStageOutcome{LevelUp: levelUp, Level: user.Level}

	if badgeID, ok := progression.BadgeForStage(stage.StageNumber); ok && !user.HasBadge(badgeID) {
		user.Badges = append(user.Badges, badgeID)
		badge, err := s.Badges.FindByID(ctx, badgeID)
		if err != nil {
			// Badge doc missing from the catalog; the award still counts.
			badge = &models.Badge{ID: badgeID}
		}
		outcome.EarnedBadge = badge
	}

	if next, err := s.Stages.FindByZoneAndNumber(ctx, stage.Zone, stage.StageNumber+1); err == nil {
		outcome.NextStage = next
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, nil, err
	}

	if err := s.Users.Replace(ctx, user); err != nil {
		return nil, nil, err
	}

	s.publish(event.StageCompleted, map[string]interface{}{
		"user_id":      user.ID,
		"stage_id":     stage.ID,
		"zone":         stage.Zone,
		"stage_number": stage.StageNumber,
		"exp_gained":   gained,
	})
	if levelUp {
		s.publish(event.UserLevelUp, map[string]interface{}{
			"user_id": user.ID,
			"level":   user.Level,
		})
	}
	if outcome.EarnedBadge != nil {
		s.publish(event.BadgeEarned, map[string]interface{}{
			"user_id":  user.ID,
			"badge_id": outcome.EarnedBadge.ID,
		})
	}

	return user, outcome, nil
}

// ListZoneForUser returns the zone's stages classified for the user, in
// availability order.
func (s *StageService) ListZoneForUser(ctx context.Context, zone, userID string) ([]progression.ClassifiedStage, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stages, err := s.zoneStages(ctx, zone)
	if err != nil {
		return nil, err
	}

	completed := make(map[string]struct{}, len(user.CompletedStages))
	for _, id := range user.CompletedStages {
		completed[id] = struct{}{}
	}

	// Highest completed stage number across all zones, not just this one.
	completedStages, err := s.Stages.FindByIDs(ctx, user.CompletedStages)
	if err != nil {
		return nil, err
	}
	highest := progression.HighestStageNumber(completedStages)

	return progression.ClassifyStages(stages, completed, highest), nil
}

func (s *StageService) zoneStages(ctx context.Context, zone string) ([]models.Stage, error) {
	if stages, ok := s.Cache.Get(ctx, zone); ok {
		return stages, nil
	}
	stages, err := s.Stages.FindByZone(ctx, zone)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, zone, stages)
	return stages, nil
}

func (s *StageService) ListStages(ctx context.Context) ([]models.Stage, error) {
	if stages, ok := s.Cache.Get(ctx, ""); ok {
		return stages, nil
	}
	stages, err := s.Stages.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, "", stages)
	return stages, nil
}

func (s *StageService) GetStage(ctx context.Context, id string) (*models.Stage, error) {
	return s.Stages.FindByID(ctx, id)
}

func (s *StageService) CreateStage(ctx context.Context, stage *models.Stage) error {
	if err := s.Stages.Create(ctx, stage); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, stage.Zone)
	return nil
}

func (s *StageService) UpdateStage(ctx context.Context, id string, update bson.M) error {
	stage, err := s.Stages.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Stages.Update(ctx, id, update); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, stage.Zone)
	return nil
}

func (s *StageService) DeleteStage(ctx context.Context, id string) error {
	stage, err := s.Stages.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Stages.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, stage.Zone)
	return nil
}

func (s *StageService) publish(eventType string, payload interface{}) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(eventType, payload); err != nil {
		log.Printf("publish %s failed: %v", eventType, err)
	}
}
