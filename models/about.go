package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AboutKey is the fixed key of the about singleton document.
const AboutKey = "about"

type FeatureBox struct {
	Icon        string `bson:"icon" json:"icon" validate:"required"`
	Title       string `bson:"title" json:"title" validate:"required"`
	Description string `bson:"description" json:"description" validate:"required"`
}

type About struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key              string             `bson:"key" json:"-"`
	Title            string             `bson:"title" json:"title"`
	Subtitle         string             `bson:"subtitle" json:"subtitle"`
	Description      string             `bson:"description" json:"description"`
	MainImage        string             `bson:"main_image" json:"mainImage"`
	MainMediaID      string             `bson:"main_media_id,omitempty" json:"mainMediaId,omitempty"`
	SecondaryImage   string             `bson:"secondary_image" json:"secondaryImage"`
	SecondaryMediaID string             `bson:"secondary_media_id,omitempty" json:"secondaryMediaId,omitempty"`
	FeatureBoxes     []FeatureBox       `bson:"feature_boxes" json:"featureBoxes"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}

type AboutRequest struct {
	Title        string       `json:"title" validate:"required"`
	Subtitle     string       `json:"subtitle" validate:"required"`
	Description  string       `json:"description" validate:"required"`
	FeatureBoxes []FeatureBox `json:"featureBoxes" validate:"omitempty,dive"`
}

// DefaultAbout is the marketing block created on first access.
func DefaultAbout() *About {
	return &About{
		Key:         AboutKey,
		Title:       "Your Essential Connection for Everyday Living",
		Subtitle:    "About Our Internet",
		Description: "We believe the internet is more than just a service, it's a lifeline. That's why we're committed to providing fast, reliable, and affordable internet for all households.",
		FeatureBoxes: []FeatureBox{
			{
				Icon:        "icon-world",
				Title:       "24/7 Support",
				Description: "We're here for you, day and night.",
			},
			{
				Icon:        "icon-wifi-router",
				Title:       "Fast, Easy Service",
				Description: "Hassle-free setup and seamless browsing, streaming, and gaming.",
			},
		},
	}
}
