package mongo

import (
	"context"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const eventCollection = "events"

// eventGateway implements gateway.EventGateway using MongoDB.
type eventGateway struct {
	collection *mongo.Collection
}

// NewEventGateway creates a MongoDB-backed calendar.
func NewEventGateway(db *mongo.Database) gateway.EventGateway {
	return &eventGateway{collection: db.Collection(eventCollection)}
}

func (g *eventGateway) List(ctx context.Context) ([]domain.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cursor, err := g.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []domain.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (g *eventGateway) Create(ctx context.Context, event *domain.Event) (string, error) {
	if _, err := g.collection.InsertOne(ctx, event); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", gateway.ErrConflict
		}
		return "", err
	}
	return event.ID, nil
}

func (g *eventGateway) Update(ctx context.Context, event *domain.Event) error {
	result, err := g.collection.ReplaceOne(ctx, bson.M{"_id": event.ID}, event)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

func (g *eventGateway) Delete(ctx context.Context, id string) error {
	result, err := g.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return gateway.ErrNotFound
	}
	return nil
}
