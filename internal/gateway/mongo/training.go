package mongo

import (
	"context"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const trainingCollection = "training_plans"

// trainingGateway implements gateway.TrainingGateway using MongoDB.
// Exercises are embedded documents owned by their plan.
type trainingGateway struct {
	collection *mongo.Collection
}

// NewTrainingGateway creates a MongoDB-backed training-plan gateway.
func NewTrainingGateway(db *mongo.Database) gateway.TrainingGateway {
	return &trainingGateway{collection: db.Collection(trainingCollection)}
}

func (g *trainingGateway) List(ctx context.Context) ([]domain.TrainingPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: 1}})
	cursor, err := g.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []domain.TrainingPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (g *trainingGateway) Create(ctx context.Context, plan *domain.TrainingPlan) (string, error) {
	if _, err := g.collection.InsertOne(ctx, plan); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", gateway.ErrConflict
		}
		return "", err
	}
	return plan.ID, nil
}

func (g *trainingGateway) Update(ctx context.Context, plan *domain.TrainingPlan) error {
	result, err := g.collection.ReplaceOne(ctx, bson.M{"_id": plan.ID}, plan)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

func (g *trainingGateway) Delete(ctx context.Context, id string) error {
	result, err := g.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return gateway.ErrNotFound
	}
	return nil
}
