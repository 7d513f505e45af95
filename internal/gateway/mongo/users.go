package mongo

import (
	"context"
	"errors"
	"time"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const userCollection = "users"

// userGateway implements gateway.UserGateway using MongoDB. The directory is
// always mutable here: admin actions persist.
type userGateway struct {
	collection *mongo.Collection
}

// NewUserGateway creates a MongoDB-backed member directory.
func NewUserGateway(db *mongo.Database) gateway.UserGateway {
	return &userGateway{collection: db.Collection(userCollection)}
}

func (g *userGateway) Create(ctx context.Context, user *domain.User) (string, error) {
	if user.Email == "" || user.Role == "" {
		return "", errors.New("user email and role are required")
	}
	if user.JoinedAt.IsZero() {
		user.JoinedAt = time.Now().UTC()
	}
	if _, err := g.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", gateway.ErrConflict
		}
		return "", err
	}
	return user.ID, nil
}

func (g *userGateway) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return g.findOne(ctx, bson.M{"email": email})
}

func (g *userGateway) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return g.findOne(ctx, bson.M{"_id": id})
}

func (g *userGateway) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	err := g.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, gateway.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (g *userGateway) Update(ctx context.Context, user *domain.User) error {
	result, err := g.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

func (g *userGateway) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := g.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *userGateway) SetApproval(ctx context.Context, id string, approved bool) error {
	return g.setField(ctx, id, bson.M{"approved": approved})
}

func (g *userGateway) SetRole(ctx context.Context, id string, role domain.Role) error {
	return g.setField(ctx, id, bson.M{"role": role})
}

func (g *userGateway) setField(ctx context.Context, id string, fields bson.M) error {
	result, err := g.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return gateway.ErrNotFound
	}
	return nil
}
