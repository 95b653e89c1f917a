package repository

import (
	"context"

	"progression-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CharacterRepository struct {
	Col *mongo.Collection
}

func NewCharacterRepository(db *mongo.Database) *CharacterRepository {
	return &CharacterRepository{Col: db.Collection("characters")}
}

func (r *CharacterRepository) FindByID(ctx context.Context, id string) (*models.Character, error) {
	var character models.Character
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&character); err != nil {
		return nil, translate(err)
	}
	return &character, nil
}

func (r *CharacterRepository) FindAll(ctx context.Context) ([]models.Character, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var characters []models.Character
	for cur.Next(ctx) {
		var c models.Character
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		characters = append(characters, c)
	}
	return characters, cur.Err()
}

func (r *CharacterRepository) Create(ctx context.Context, character *models.Character) error {
	if character.ID == "" {
		character.ID = newID()
	}
	_, err := r.Col.InsertOne(ctx, character)
	return err
}

func (r *CharacterRepository) Update(ctx context.Context, id string, update bson.M) error {
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CharacterRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
