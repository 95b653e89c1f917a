package service

import (
	"context"
	"log"
	"time"

	"progression-service/internal/event"
	"progression-service/internal/models"
	"progression-service/internal/progression"

	"go.mongodb.org/mongo-driver/bson"
)

type QuestService struct {
	Users   UserStore
	Quests  QuestStore
	Results ResultStore
	Events  EventPublisher
}

func NewQuestService(users UserStore, quests QuestStore, results ResultStore, events EventPublisher) *QuestService {
	return &QuestService{Users: users, Quests: quests, Results: results, Events: events}
}

// SubmitQuest grades the response set, grants the experience delta, and
// records one immutable result row. Resubmission is allowed: every attempt
// appends a new result and pays out again.
func (s *QuestService) SubmitQuest(ctx context.Context, userID, questID string, responses []models.UserResponse) (*models.User, *models.Result, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	quest, err := s.Quests.FindByID(ctx, questID)
	if err != nil {
		return nil, nil, err
	}

	score, isPassed, expDelta := progression.GradeQuest(*quest, responses)

	grantExperience(user, expDelta)
	if err := s.Users.Replace(ctx, user); err != nil {
		return nil, nil, err
	}

	result := &models.Result{
		UserID:    user.ID,
		QuestID:   quest.ID,
		Score:     score,
		IsPassed:  isPassed,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Results.Create(ctx, result); err != nil {
		return nil, nil, err
	}

	if s.Events != nil {
		if err := s.Events.Publish(event.QuestSubmitted, map[string]interface{}{
			"user_id":   user.ID,
			"quest_id":  quest.ID,
			"score":     score,
			"is_passed": isPassed,
		}); err != nil {
			log.Printf("publish %s failed: %v", event.QuestSubmitted, err)
		}
	}

	return user, result, nil
}

// ListQuestsForUser lists quest summaries with the answer keys stripped.
// A quest with any prior result for the user is flagged taken; the flag is
// informational and never blocks resubmission.
func (s *QuestService) ListQuestsForUser(ctx context.Context, userID string) ([]models.QuestSummary, error) {
	quests, err := s.Quests.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	taken := map[string]struct{}{}
	if userID != "" {
		results, err := s.Results.FindByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			taken[r.QuestID] = struct{}{}
		}
	}

	summaries := make([]models.QuestSummary, 0, len(quests))
	for _, q := range quests {
		_, wasTaken := taken[q.ID]
		summaries = append(summaries, models.QuestSummary{
			ID:           q.ID,
			Title:        q.Title,
			Description:  q.Description,
			PassingScore: q.PassingScore,
			Exp:          q.Exp,
			Taken:        wasTaken,
		})
	}
	return summaries, nil
}

// GetQuestForUser returns the public quest shape: question texts only.
func (s *QuestService) GetQuestForUser(ctx context.Context, id string) (*models.QuestDetail, error) {
	quest, err := s.Quests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	questions := make([]string, 0, len(quest.Questions))
	for _, q := range quest.Questions {
		questions = append(questions, q.QuestionText)
	}
	return &models.QuestDetail{
		ID:           quest.ID,
		Title:        quest.Title,
		Description:  quest.Description,
		Questions:    questions,
		PassingScore: quest.PassingScore,
		Exp:          quest.Exp,
	}, nil
}

func (s *QuestService) GetQuest(ctx context.Context, id string) (*models.Quest, error) {
	return s.Quests.FindByID(ctx, id)
}

func (s *QuestService) CreateQuest(ctx context.Context, quest *models.Quest) error {
	return s.Quests.Create(ctx, quest)
}

func (s *QuestService) UpdateQuest(ctx context.Context, id string, update bson.M) error {
	return s.Quests.Update(ctx, id, update)
}

func (s *QuestService) DeleteQuest(ctx context.Context, id string) error {
	return s.Quests.Delete(ctx, id)
}
