package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultBannerColor = "#F79621"

type Banner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Subtitle    string             `bson:"subtitle" json:"subtitle"`
	Button1Text string             `bson:"button1_text" json:"button1Text"`
	Button1Link string             `bson:"button1_link" json:"button1Link"`
	Button2Text string             `bson:"button2_text" json:"button2Text"`
	Button2Link string             `bson:"button2_link" json:"button2Link"`
	ImageURL    string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	MediaID     string             `bson:"media_id,omitempty" json:"mediaId,omitempty"`
	BgColor     string             `bson:"bg_color" json:"bgColor"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

type BannerRequest struct {
	Title       string `json:"title" validate:"required"`
	Subtitle    string `json:"subtitle" validate:"required"`
	Button1Text string `json:"button1Text" validate:"required"`
	Button1Link string `json:"button1Link" validate:"required"`
	Button2Text string `json:"button2Text" validate:"required"`
	Button2Link string `json:"button2Link" validate:"required"`
	BgColor     string `json:"bgColor" validate:"omitempty,hexcolor"`
	IsActive    bool   `json:"isActive"`
}
