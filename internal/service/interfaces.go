package service

import (
	"context"

	"progression-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Store interfaces abstract the Mongo repositories so the orchestrators
// can be exercised against in-memory fakes. Every Find* returns
// repository.ErrNotFound on a miss.

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	Create(ctx context.Context, user *models.User) error
	Replace(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

type StageStore interface {
	FindByID(ctx context.Context, id string) (*models.Stage, error)
	FindAll(ctx context.Context) ([]models.Stage, error)
	FindByZone(ctx context.Context, zone string) ([]models.Stage, error)
	FindByZoneAndNumber(ctx context.Context, zone string, stageNumber int) (*models.Stage, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Stage, error)
	Create(ctx context.Context, stage *models.Stage) error
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

type QuestStore interface {
	FindByID(ctx context.Context, id string) (*models.Quest, error)
	FindAll(ctx context.Context) ([]models.Quest, error)
	Create(ctx context.Context, quest *models.Quest) error
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

type BadgeStore interface {
	FindByID(ctx context.Context, id string) (*models.Badge, error)
	FindAll(ctx context.Context) ([]models.Badge, error)
	Create(ctx context.Context, badge *models.Badge) error
}

type CharacterStore interface {
	FindByID(ctx context.Context, id string) (*models.Character, error)
	FindAll(ctx context.Context) ([]models.Character, error)
	Create(ctx context.Context, character *models.Character) error
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

type ResultStore interface {
	FindByUser(ctx context.Context, userID string) ([]models.Result, error)
	FindByQuest(ctx context.Context, questID string) ([]models.Result, error)
	Create(ctx context.Context, result *models.Result) error
}

// EventPublisher is the outbound event hook; satisfied by the AMQP
// publisher. Services tolerate a nil publisher.
type EventPublisher interface {
	Publish(eventType string, payload interface{}) error
}
