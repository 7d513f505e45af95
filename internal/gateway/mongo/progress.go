package mongo

import (
	"context"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const progressCollection = "progress_entries"

// progressGateway implements gateway.ProgressGateway using MongoDB.
type progressGateway struct {
	collection *mongo.Collection
}

// NewProgressGateway creates a MongoDB-backed journal.
func NewProgressGateway(db *mongo.Database) gateway.ProgressGateway {
	return &progressGateway{collection: db.Collection(progressCollection)}
}

func (g *progressGateway) List(ctx context.Context) ([]domain.ProgressEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := g.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.ProgressEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (g *progressGateway) Create(ctx context.Context, entry *domain.ProgressEntry) (string, error) {
	if _, err := g.collection.InsertOne(ctx, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", gateway.ErrConflict
		}
		return "", err
	}
	return entry.ID, nil
}

func (g *progressGateway) Update(ctx context.Context, entry *domain.ProgressEntry) error {
	result, err := g.collection.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

func (g *progressGateway) Delete(ctx context.Context, id string) error {
	result, err := g.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return gateway.ErrNotFound
	}
	return nil
}
