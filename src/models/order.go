package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a quantity of a course; the course reference is optional
// and never checked for existence.
type OrderItem struct {
	ID       primitive.ObjectID  `json:"_id" bson:"_id,omitempty" swaggertype:"string"`
	Quantity int                 `json:"quantity" bson:"quantity" example:"1"`
	Course   *primitive.ObjectID `json:"course,omitempty" bson:"course,omitempty" swaggertype:"string"`
}

func (o OrderItem) MarshalJSON() ([]byte, error) {
	type orderItem OrderItem
	return json.Marshal(struct {
		orderItem
		ID string `json:"id"`
	}{orderItem(o), o.ID.Hex()})
}

type OrderItemInput struct {
	Quantity *int   `json:"quantity" form:"quantity" validate:"required"`
	Course   string `json:"course" form:"course" validate:"omitempty,mongodb"`
}

func (in *OrderItemInput) Validate() error {
	return validate.Struct(in)
}
