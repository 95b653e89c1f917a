package repository

import (
	"context"

	"progression-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BadgeRepository struct {
	Col *mongo.Collection
}

func NewBadgeRepository(db *mongo.Database) *BadgeRepository {
	return &BadgeRepository{Col: db.Collection("badges")}
}

func (r *BadgeRepository) FindByID(ctx context.Context, id string) (*models.Badge, error) {
	var badge models.Badge
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&badge); err != nil {
		return nil, translate(err)
	}
	return &badge, nil
}

func (r *BadgeRepository) FindAll(ctx context.Context) ([]models.Badge, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var badges []models.Badge
	for cur.Next(ctx) {
		var b models.Badge
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}
	return badges, cur.Err()
}

func (r *BadgeRepository) Create(ctx context.Context, badge *models.Badge) error {
	if badge.ID == "" {
		badge.ID = newID()
	}
	_, err := r.Col.InsertOne(ctx, badge)
	return err
}
