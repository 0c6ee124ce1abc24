package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentMethod struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MethodName string             `bson:"method_name" json:"methodName"`
	IconClass  string             `bson:"icon_class" json:"iconClass"`
	// Steps may embed markup for formatting, e.g. "Press <strong>*150*00#</strong>".
	Steps     []string  `bson:"steps" json:"steps"`
	Order     int       `bson:"order" json:"order"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

type PaymentMethodRequest struct {
	MethodName string   `json:"methodName" validate:"required"`
	IconClass  string   `json:"iconClass" validate:"required"`
	Steps      []string `json:"steps" validate:"required,min=1,dive,required"`
	Order      int      `json:"order" validate:"min=0"`
}
