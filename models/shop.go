package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type OpeningHour struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

// OpeningHours covers the business week, Monday through Saturday.
type OpeningHours struct {
	Monday    OpeningHour `bson:"monday" json:"monday"`
	Tuesday   OpeningHour `bson:"tuesday" json:"tuesday"`
	Wednesday OpeningHour `bson:"wednesday" json:"wednesday"`
	Thursday  OpeningHour `bson:"thursday" json:"thursday"`
	Friday    OpeningHour `bson:"friday" json:"friday"`
	Saturday  OpeningHour `bson:"saturday" json:"saturday"`
}

type Shop struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Address       string             `bson:"address" json:"address"`
	City          string             `bson:"city" json:"city"`
	ContactNumber string             `bson:"contact_number" json:"contactNumber"`
	Location      GeoPoint           `bson:"location" json:"location"`
	ImageURL      string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	MediaID       string             `bson:"media_id,omitempty" json:"mediaId,omitempty"`
	OpeningHours  OpeningHours       `bson:"opening_hours" json:"openingHours"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

type ShopRequest struct {
	Name          string        `json:"name" validate:"required"`
	Address       string        `json:"address" validate:"required"`
	City          string        `json:"city" validate:"required"`
	ContactNumber string        `json:"contactNumber" validate:"required"`
	Location      GeoPoint      `json:"location"`
	OpeningHours  *OpeningHours `json:"openingHours"`
}

// DefaultOpeningHours returns the standard 09:00-17:00 business week.
func DefaultOpeningHours() OpeningHours {
	h := OpeningHour{Open: "09:00", Close: "17:00"}
	return OpeningHours{
		Monday:    h,
		Tuesday:   h,
		Wednesday: h,
		Thursday:  h,
		Friday:    h,
		Saturday:  h,
	}
}
