package categories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLookup answers category existence checks against the categories
// collection, which is written by another service.
type MongoLookup struct {
	collection *mongo.Collection
}

func NewMongoLookup(collection *mongo.Collection) *MongoLookup {
	return &MongoLookup{collection: collection}
}

func (l *MongoLookup) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := l.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
