package mongo

import (
	"context"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const notificationCollection = "notifications"

// notificationGateway implements gateway.NotificationGateway using MongoDB.
type notificationGateway struct {
	collection *mongo.Collection
}

// NewNotificationGateway creates a MongoDB-backed notification feed.
func NewNotificationGateway(db *mongo.Database) gateway.NotificationGateway {
	return &notificationGateway{collection: db.Collection(notificationCollection)}
}

func (g *notificationGateway) List(ctx context.Context) ([]domain.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := g.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []domain.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (g *notificationGateway) Create(ctx context.Context, n *domain.Notification) (string, error) {
	if _, err := g.collection.InsertOne(ctx, n); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", gateway.ErrConflict
		}
		return "", err
	}
	return n.ID, nil
}

func (g *notificationGateway) MarkRead(ctx context.Context, id string) error {
	result, err := g.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

func (g *notificationGateway) MarkAllRead(ctx context.Context) error {
	_, err := g.collection.UpdateMany(ctx, bson.M{"isRead": false}, bson.M{"$set": bson.M{"isRead": true}})
	return err
}

func (g *notificationGateway) Delete(ctx context.Context, id string) error {
	result, err := g.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return gateway.ErrNotFound
	}
	return nil
}
