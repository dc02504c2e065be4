package orderitems

import (
	"context"
	"errors"
	"time"

	"course-catalog/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrOrderItemNotFound = errors.New("order item not found")

type Store interface {
	Insert(ctx context.Context, item *models.OrderItem) error
	FindAll(ctx context.Context) ([]models.OrderItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.OrderItem, error)
}

type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

func (s *MongoStore) Insert(ctx context.Context, item *models.OrderItem) error {
	_, err := s.collection.InsertOne(ctx, item)
	return err
}

func (s *MongoStore) FindAll(ctx context.Context) ([]models.OrderItem, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.OrderItem{}
	for cursor.Next(ctx) {
		var item models.OrderItem
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.OrderItem, error) {
	var item models.OrderItem
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Service stores order items. The referenced course is not looked up.
type Service struct {
	store   Store
	timeout time.Duration
}

func NewService(store Store, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{store: store, timeout: timeout}
}

func (s *Service) Create(ctx context.Context, item models.OrderItem) (*models.OrderItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	item.ID = primitive.NewObjectID()
	if err := s.store.Insert(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) List(ctx context.Context) ([]models.OrderItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.store.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.OrderItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.store.FindByID(ctx, id)
}
