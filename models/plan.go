package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan types
const (
	PlanTypeResidential = "residential"
	PlanTypeBusiness    = "business"
)

type Plan struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Type             string             `bson:"type" json:"type"` // residential, business
	Speed            int                `bson:"speed" json:"speed"`
	Price            int                `bson:"price" json:"price"`
	SupportedDevices int                `bson:"supported_devices" json:"supportedDevices"`
	Features         []string           `bson:"features" json:"features"`
	ImageURL         string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	MediaID          string             `bson:"media_id,omitempty" json:"mediaId,omitempty"`
	IsPopular        bool               `bson:"is_popular" json:"isPopular"`
	Position         int                `bson:"position" json:"position"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}

type PlanRequest struct {
	Name             string   `json:"name" validate:"required"`
	Type             string   `json:"type" validate:"omitempty,oneof=residential business"`
	Speed            int      `json:"speed" validate:"required,min=1"`
	Price            int      `json:"price" validate:"min=0"`
	SupportedDevices int      `json:"supportedDevices" validate:"required,min=1"`
	Features         []string `json:"features" validate:"required,min=1,dive,required"`
	IsPopular        bool     `json:"isPopular"`
	Position         int      `json:"position" validate:"min=0"`
}
