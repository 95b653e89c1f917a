package repository

import (
	"context"
	"time"

	"progression-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("results")}
}

func (r *ResultRepository) decodeAll(ctx context.Context, cur *mongo.Cursor) ([]models.Result, error) {
	defer cur.Close(ctx)
	var results []models.Result
	for cur.Next(ctx) {
		var res models.Result
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, cur.Err()
}

func (r *ResultRepository) FindByUser(ctx context.Context, userID string) ([]models.Result, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	return r.decodeAll(ctx, cur)
}

func (r *ResultRepository) FindByQuest(ctx context.Context, questID string) ([]models.Result, error) {
	cur, err := r.Col.Find(ctx, bson.M{"quest_id": questID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	return r.decodeAll(ctx, cur)
}

func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	if result.ID == "" {
		result.ID = newID()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}
	_, err := r.Col.InsertOne(ctx, result)
	return err
}
