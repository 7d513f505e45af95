package mongo

import (
	"context"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const videoCollection = "videos"

// videoGateway implements gateway.VideoGateway using MongoDB.
type videoGateway struct {
	collection *mongo.Collection
}

// NewVideoGateway creates a MongoDB-backed video catalog.
func NewVideoGateway(db *mongo.Database) gateway.VideoGateway {
	return &videoGateway{collection: db.Collection(videoCollection)}
}

func (g *videoGateway) List(ctx context.Context) ([]domain.Video, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := g.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var videos []domain.Video
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (g *videoGateway) Create(ctx context.Context, video *domain.Video) (string, error) {
	if _, err := g.collection.InsertOne(ctx, video); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", gateway.ErrConflict
		}
		return "", err
	}
	return video.ID, nil
}

func (g *videoGateway) Delete(ctx context.Context, id string) error {
	result, err := g.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return gateway.ErrNotFound
	}
	return nil
}
