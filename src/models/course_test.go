package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }

func validInput() CourseInput {
	return CourseInput{
		Name:        "Intro",
		Description: "Getting started",
		Author:      "A",
		Price:       floatPtr(10),
		Category:    primitive.NewObjectID().Hex(),
	}
}

func TestCourseInput(t *testing.T) {
	t.Run("TestDefaultsApplied", func(t *testing.T) {
		in := validInput()
		require.NoError(t, in.Validate())

		cat := primitive.NewObjectID()
		course := in.ToCourse(cat, "")
		assert.Equal(t, "Intro", course.Name)
		assert.Equal(t, 10.0, course.Price)
		assert.Equal(t, cat, course.Category)
		assert.Equal(t, "", course.Image)
		assert.Equal(t, 0, course.UserEnrolled)
		assert.Equal(t, 0.0, course.Rating)
		assert.Equal(t, 0, course.NumReviews)
		assert.False(t, course.IsFeatured)
	})

	t.Run("TestOptionalFieldsCopied", func(t *testing.T) {
		in := validInput()
		in.UserEnrolled = intPtr(7)
		in.Rating = floatPtr(4.5)
		in.NumReviews = intPtr(2)
		in.IsFeatured = boolPtr(true)

		course := in.ToCourse(primitive.NewObjectID(), "http://h/public/uploads/a.png")
		assert.Equal(t, 7, course.UserEnrolled)
		assert.Equal(t, 4.5, course.Rating)
		assert.Equal(t, 2, course.NumReviews)
		assert.True(t, course.IsFeatured)
		assert.Equal(t, "http://h/public/uploads/a.png", course.Image)
	})

	t.Run("TestZeroPriceAllowed", func(t *testing.T) {
		in := validInput()
		in.Price = floatPtr(0)
		assert.NoError(t, in.Validate())
	})

	t.Run("TestRequiredFields", func(t *testing.T) {
		cases := map[string]func(*CourseInput){
			"name":            func(in *CourseInput) { in.Name = "" },
			"description":     func(in *CourseInput) { in.Description = "" },
			"author":          func(in *CourseInput) { in.Author = "" },
			"price":           func(in *CourseInput) { in.Price = nil },
			"category":        func(in *CourseInput) { in.Category = "" },
			"bad category":    func(in *CourseInput) { in.Category = "not-an-id" },
			"negative rating": func(in *CourseInput) { in.Rating = floatPtr(-1) },
		}
		for name, mutate := range cases {
			in := validInput()
			mutate(&in)
			assert.Error(t, in.Validate(), name)
		}
	})
}

func TestCourseJSON(t *testing.T) {
	id := primitive.NewObjectID()
	cat := primitive.NewObjectID()
	course := Course{
		ID:          id,
		Name:        "Intro",
		Price:       10,
		Category:    cat,
		DateCreated: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("TestIDViewAndCategoryID", func(t *testing.T) {
		raw, err := json.Marshal(course)
		require.NoError(t, err)

		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.Equal(t, id.Hex(), out["id"])
		assert.Equal(t, id.Hex(), out["_id"])
		assert.Equal(t, cat.Hex(), out["category"])
		assert.Equal(t, 10.0, out["price"])
		assert.Equal(t, false, out["isFeatured"])
		assert.NotContains(t, out, "categoryDoc")
	})

	t.Run("TestPopulatedCategory", func(t *testing.T) {
		populated := course
		populated.CategoryDoc = &Category{ID: cat, Name: "Programming"}

		raw, err := json.Marshal(populated)
		require.NoError(t, err)

		var out struct {
			ID       string `json:"id"`
			Category struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"category"`
		}
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.Equal(t, id.Hex(), out.ID)
		assert.Equal(t, cat.Hex(), out.Category.ID)
		assert.Equal(t, "Programming", out.Category.Name)
	})

	t.Run("TestSliceOfCourses", func(t *testing.T) {
		raw, err := json.Marshal([]Course{course})
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"id":"`+id.Hex()+`"`)
	})
}
