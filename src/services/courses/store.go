package courses

import (
	"context"
	"errors"

	"course-catalog/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the persistence capability the course service needs.
type Store interface {
	Find(ctx context.Context, filter models.CourseFilters, populate bool) ([]models.Course, error)
	FindByID(ctx context.Context, id primitive.ObjectID, populate bool) (*models.Course, error)
	Insert(ctx context.Context, course *models.Course) error
	Replace(ctx context.Context, course *models.Course) (*models.Course, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	Count(ctx context.Context) (int64, error)
}

// MongoStore keeps courses in a MongoDB collection and populates categories
// from a sibling collection with $lookup.
type MongoStore struct {
	courses            *mongo.Collection
	categoryCollection string
}

func NewMongoStore(courses *mongo.Collection, categoryCollection string) *MongoStore {
	return &MongoStore{courses: courses, categoryCollection: categoryCollection}
}

func buildCourseFilter(f models.CourseFilters) bson.M {
	filter := bson.M{}
	if len(f.Categories) > 0 {
		filter["category"] = bson.M{"$in": f.Categories}
	}
	if f.FeaturedOnly {
		filter["isFeatured"] = true
	}
	return filter
}

func categoryLookupStages(from string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: from},
			{Key: "localField", Value: "category"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "categoryDoc"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$categoryDoc"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

func (s *MongoStore) pipeline(match bson.M, limit int64, populate bool) mongo.Pipeline {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: match}}}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	if populate {
		pipeline = append(pipeline, categoryLookupStages(s.categoryCollection)...)
	}
	return pipeline
}

func (s *MongoStore) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]models.Course, error) {
	cursor, err := s.courses.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []models.Course{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.Course{}
	}
	return results, nil
}

func (s *MongoStore) Find(ctx context.Context, filter models.CourseFilters, populate bool) ([]models.Course, error) {
	return s.aggregate(ctx, s.pipeline(buildCourseFilter(filter), filter.Limit, populate))
}

func (s *MongoStore) FindByID(ctx context.Context, id primitive.ObjectID, populate bool) (*models.Course, error) {
	results, err := s.aggregate(ctx, s.pipeline(bson.M{"_id": id}, 1, populate))
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrCourseNotFound
	}
	return &results[0], nil
}

func (s *MongoStore) Insert(ctx context.Context, course *models.Course) error {
	_, err := s.courses.InsertOne(ctx, course)
	return err
}

// replaceUpdate is the $set document covering every mutable course field.
// The id and creation date are never rewritten.
func replaceUpdate(course *models.Course) bson.M {
	return bson.M{"$set": bson.M{
		"name":         course.Name,
		"description":  course.Description,
		"author":       course.Author,
		"image":        course.Image,
		"price":        course.Price,
		"category":     course.Category,
		"userEnrolled": course.UserEnrolled,
		"rating":       course.Rating,
		"numReviews":   course.NumReviews,
		"isFeatured":   course.IsFeatured,
	}}
}

func replaceOptions() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// Replace rewrites every mutable field of the stored course and returns the
// document as it is after the update.
func (s *MongoStore) Replace(ctx context.Context, course *models.Course) (*models.Course, error) {
	var updated models.Course
	err := s.courses.FindOneAndUpdate(ctx, bson.M{"_id": course.ID}, replaceUpdate(course), replaceOptions()).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a course and returns what was removed.
func (s *MongoStore) Delete(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var removed models.Course
	err := s.courses.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&removed)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &removed, nil
}

func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	return s.courses.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the indexes used by the list and featured queries.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.courses.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "isFeatured", Value: 1}}},
	})
	return err
}
