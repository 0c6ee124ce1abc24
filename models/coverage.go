package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coverage statuses
const (
	CoverageStatusCovered = "covered"
	CoverageStatusPending = "pending"
	CoverageStatusPlanned = "planned"
)

type CoverageArea struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Area       string             `bson:"area" json:"area"`
	City       string             `bson:"city" json:"city"`
	Status     string             `bson:"status" json:"status"` // covered, pending, planned
	Population int                `bson:"population" json:"population"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

type CoverageAreaRequest struct {
	Area       string `json:"area" validate:"required"`
	City       string `json:"city" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=covered pending planned"`
	Population int    `json:"population" validate:"min=0"`
}
