package repository

import (
	"context"
	"time"

	"progression-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestRepository struct {
	Col *mongo.Collection
}

func NewQuestRepository(db *mongo.Database) *QuestRepository {
	return &QuestRepository{Col: db.Collection("quests")}
}

func (r *QuestRepository) FindByID(ctx context.Context, id string) (*models.Quest, error) {
	var quest models.Quest
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&quest); err != nil {
		return nil, translate(err)
	}
	return &quest, nil
}

func (r *QuestRepository) FindAll(ctx context.Context) ([]models.Quest, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quests []models.Quest
	for cur.Next(ctx) {
		var q models.Quest
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quests = append(quests, q)
	}
	return quests, cur.Err()
}

func (r *QuestRepository) Create(ctx context.Context, quest *models.Quest) error {
	if quest.ID == "" {
		quest.ID = newID()
	}
	now := time.Now().UTC()
	quest.CreatedAt = now
	quest.UpdatedAt = now
	_, err := r.Col.InsertOne(ctx, quest)
	return err
}

func (r *QuestRepository) Update(ctx context.Context, id string, update bson.M) error {
	update["updated_at"] = time.Now().UTC()
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QuestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
