package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CourseCollectionName    = "courses"
	CategoryCollectionName  = "categories"
	OrderItemCollectionName = "orderitems"
)

// Collections groups the handles the services are built from.
type Collections struct {
	Courses    *mongo.Collection
	Categories *mongo.Collection
	OrderItems *mongo.Collection
}

// ConnectMongoDB dials MongoDB and verifies the connection with a ping.
// The returned client is pooled and safe for concurrent use.
func ConnectMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Println("✅ MongoDB connected successfully")
	return client, nil
}

func NewCollections(client *mongo.Client, dbName string) Collections {
	db := client.Database(dbName)
	return Collections{
		Courses:    db.Collection(CourseCollectionName),
		Categories: db.Collection(CategoryCollectionName),
		OrderItems: db.Collection(OrderItemCollectionName),
	}
}
