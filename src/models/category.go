package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is owned by another service; only its shape is needed here to
// render populated courses.
type Category struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id,omitempty" swaggertype:"string" example:"507f191e810c19729de860ea"`
	Name  string             `json:"name" bson:"name" example:"Programming"`
	Icon  string             `json:"icon" bson:"icon" example:"code"`
	Color string             `json:"color" bson:"color" example:"#55879"`
}

func (c Category) MarshalJSON() ([]byte, error) {
	type category Category
	return json.Marshal(struct {
		category
		ID string `json:"id"`
	}{category(c), c.ID.Hex()})
}
