package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettingsKey is the fixed key of the settings singleton document.
const SiteSettingsKey = "site"

type Settings struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key             string             `bson:"key" json:"-"`
	FontFamily      string             `bson:"font_family" json:"fontFamily"`
	FontSize        string             `bson:"font_size" json:"fontSize"`
	FontWeight      string             `bson:"font_weight" json:"fontWeight"`
	PrimaryColor    string             `bson:"primary_color" json:"primaryColor"`
	SecondaryColor  string             `bson:"secondary_color" json:"secondaryColor"`
	SiteName        string             `bson:"site_name" json:"siteName"`
	SiteDescription string             `bson:"site_description" json:"siteDescription"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}

type SettingsRequest struct {
	FontFamily      string `json:"fontFamily" validate:"omitempty,oneof=Inter Outfit Roboto 'Open Sans' Poppins Montserrat Arial Helvetica"`
	FontSize        string `json:"fontSize" validate:"omitempty,oneof=12px 14px 16px 18px 20px 24px"`
	FontWeight      string `json:"fontWeight" validate:"omitempty,oneof=300 400 500 600 700 900"`
	PrimaryColor    string `json:"primaryColor" validate:"omitempty,hexcolor"`
	SecondaryColor  string `json:"secondaryColor" validate:"omitempty,hexcolor"`
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
}

// DefaultSettings are applied when the singleton is first created.
func DefaultSettings() *Settings {
	return &Settings{
		Key:             SiteSettingsKey,
		FontFamily:      "Inter",
		FontSize:        "16px",
		FontWeight:      "400",
		PrimaryColor:    "#F79621",
		SecondaryColor:  "#2d1a00",
		SiteName:        "Savanna Fibre",
		SiteDescription: "Your Essential Connection for Everyday Living",
	}
}
