package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Accessory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       int                `bson:"price" json:"price"`
	ImageURL    string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	MediaID     string             `bson:"media_id,omitempty" json:"mediaId,omitempty"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

type AccessoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       int    `json:"price" validate:"min=0"`
	IsActive    bool   `json:"isActive"`
}
