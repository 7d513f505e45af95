package mongo

import (
	"context"
	"errors"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const clubCollection = "club_info"

// The singleton profile lives in a single document under a fixed id.
const clubDocID = "club"

// clubDoc wraps the profile so it can carry the fixed _id.
type clubDoc struct {
	ID   string          `bson:"_id"`
	Info domain.ClubInfo `bson:"info"`
}

// clubGateway implements gateway.ClubGateway using MongoDB.
type clubGateway struct {
	collection *mongo.Collection
}

// NewClubGateway creates a MongoDB-backed club profile gateway.
func NewClubGateway(db *mongo.Database) gateway.ClubGateway {
	return &clubGateway{collection: db.Collection(clubCollection)}
}

func (g *clubGateway) Fetch(ctx context.Context) (*domain.ClubInfo, error) {
	var doc clubDoc
	err := g.collection.FindOne(ctx, bson.M{"_id": clubDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, gateway.ErrNotFound
		}
		return nil, err
	}
	return &doc.Info, nil
}

func (g *clubGateway) Save(ctx context.Context, info *domain.ClubInfo) error {
	doc := clubDoc{ID: clubDocID, Info: *info}
	opts := options.Replace().SetUpsert(true)
	_, err := g.collection.ReplaceOne(ctx, bson.M{"_id": clubDocID}, doc, opts)
	return err
}
