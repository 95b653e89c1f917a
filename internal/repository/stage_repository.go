package repository

import (
	"context"
	"time"

	"progression-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StageRepository struct {
	Col *mongo.Collection
}

func NewStageRepository(db *mongo.Database) *StageRepository {
	return &StageRepository{Col: db.Collection("stages")}
}

func (r *StageRepository) FindByID(ctx context.Context, id string) (*models.Stage, error) {
	var stage models.Stage
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&stage); err != nil {
		return nil, translate(err)
	}
	return &stage, nil
}

func (r *StageRepository) decodeAll(ctx context.Context, cur *mongo.Cursor) ([]models.Stage, error) {
	defer cur.Close(ctx)
	var stages []models.Stage
	for cur.Next(ctx) {
		var s models.Stage
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, cur.Err()
}

func (r *StageRepository) FindAll(ctx context.Context) ([]models.Stage, error) {
	cur, err := r.Col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "zone", Value: 1}, {Key: "stage_number", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return r.decodeAll(ctx, cur)
}

func (r *StageRepository) FindByZone(ctx context.Context, zone string) ([]models.Stage, error) {
	cur, err := r.Col.Find(ctx, bson.M{"zone": zone}, options.Find().SetSort(bson.D{{Key: "stage_number", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return r.decodeAll(ctx, cur)
}

func (r *StageRepository) FindByZoneAndNumber(ctx context.Context, zone string, stageNumber int) (*models.Stage, error) {
	var stage models.Stage
	err := r.Col.FindOne(ctx, bson.M{"zone": zone, "stage_number": stageNumber}).Decode(&stage)
	if err != nil {
		return nil, translate(err)
	}
	return &stage, nil
}

// FindByIDs returns the stages for the given ids; missing ids are simply
// absent from the result.
func (r *StageRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Stage, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	return r.decodeAll(ctx, cur)
}

func (r *StageRepository) Create(ctx context.Context, stage *models.Stage) error {
	if stage.ID == "" {
		stage.ID = newID()
	}
	now := time.Now().UTC()
	stage.CreatedAt = now
	stage.UpdatedAt = now
	_, err := r.Col.InsertOne(ctx, stage)
	return err
}

func (r *StageRepository) Update(ctx context.Context, id string, update bson.M) error {
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

func (r *StageRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
