package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is a catalog entry as stored in the courses collection.
// CategoryDoc is only set when the category has been populated by a lookup.
type Course struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty" swaggertype:"string" example:"507f1f77bcf86cd799439011"`
	Name         string             `json:"name" bson:"name" example:"Introduction to Go"`
	Description  string             `json:"description" bson:"description" example:"Learn the basics of Go"`
	Author       string             `json:"author" bson:"author" example:"Jane Doe"`
	Image        string             `json:"image" bson:"image" example:"http://localhost:8888/public/uploads/cover.png-1700000000000.png"`
	Price        float64            `json:"price" bson:"price" example:"10"`
	Category     primitive.ObjectID `json:"category" bson:"category" swaggertype:"string" example:"507f191e810c19729de860ea"`
	UserEnrolled int                `json:"userEnrolled" bson:"userEnrolled" example:"0"`
	Rating       float64            `json:"rating" bson:"rating" example:"0"`
	NumReviews   int                `json:"numReviews" bson:"numReviews" example:"0"`
	IsFeatured   bool               `json:"isFeatured" bson:"isFeatured" example:"false"`
	DateCreated  time.Time          `json:"dateCreated" bson:"dateCreated"`
	CategoryDoc  *Category          `json:"-" bson:"categoryDoc,omitempty"`
}

// MarshalJSON adds the derived "id" view and renders category as an
// object when it was populated, otherwise as its hex id.
func (c Course) MarshalJSON() ([]byte, error) {
	type course Course
	out := struct {
		course
		ID       string      `json:"id"`
		Category interface{} `json:"category"`
	}{
		course:   course(c),
		ID:       c.ID.Hex(),
		Category: c.Category.Hex(),
	}
	if c.CategoryDoc != nil {
		out.Category = c.CategoryDoc
	}
	return json.Marshal(out)
}

// CourseInput is the create/update body, accepted as multipart form or JSON.
// Optional counters are pointers so an absent field falls back to its default.
type CourseInput struct {
	Name         string   `json:"name" form:"name" validate:"required"`
	Description  string   `json:"description" form:"description" validate:"required"`
	Author       string   `json:"author" form:"author" validate:"required"`
	Price        *float64 `json:"price" form:"price" validate:"required,gte=0"`
	Category     string   `json:"category" form:"category" validate:"required,mongodb"`
	UserEnrolled *int     `json:"userEnrolled" form:"userEnrolled" validate:"omitempty,gte=0"`
	Rating       *float64 `json:"rating" form:"rating" validate:"omitempty,gte=0"`
	NumReviews   *int     `json:"numReviews" form:"numReviews" validate:"omitempty,gte=0"`
	IsFeatured   *bool    `json:"isFeatured" form:"isFeatured"`
}

// Validate checks the required fields and value ranges.
func (in *CourseInput) Validate() error {
	return validate.Struct(in)
}

// ToCourse builds the full document from the input, applying defaults for
// every optional field. The result carries no ID or creation date.
func (in *CourseInput) ToCourse(category primitive.ObjectID, image string) Course {
	course := Course{
		Name:        in.Name,
		Description: in.Description,
		Author:      in.Author,
		Image:       image,
		Category:    category,
	}
	if in.Price != nil {
		course.Price = *in.Price
	}
	if in.UserEnrolled != nil {
		course.UserEnrolled = *in.UserEnrolled
	}
	if in.Rating != nil {
		course.Rating = *in.Rating
	}
	if in.NumReviews != nil {
		course.NumReviews = *in.NumReviews
	}
	if in.IsFeatured != nil {
		course.IsFeatured = *in.IsFeatured
	}
	return course
}

// CourseFilters selects courses for list and featured queries.
// A zero Limit means no limit.
type CourseFilters struct {
	Categories   []primitive.ObjectID
	FeaturedOnly bool
	Limit        int64
}

// CourseCountResponse is the body of GET /courses/get/count.
type CourseCountResponse struct {
	CourseCount int64 `json:"courseCount" example:"12"`
}

// FeaturedCoursesResponse is the body of GET /courses/get/featured/:count.
type FeaturedCoursesResponse struct {
	CourseFeatured []Course `json:"courseFeatured"`
}
