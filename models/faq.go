package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FAQ struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category string             `bson:"category" json:"category"`
	Question string             `bson:"question" json:"question"`
	Answer   string             `bson:"answer" json:"answer"`
	// Order ranks the whole category, not individual questions.
	Order     int       `bson:"order" json:"order"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

type FAQEntry struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// FAQBatchRequest creates or replaces every FAQ of one category at once.
type FAQBatchRequest struct {
	Category string     `json:"category" validate:"required"`
	Order    int        `json:"order" validate:"min=0"`
	FAQs     []FAQEntry `json:"faqs" validate:"required,min=1,dive"`
}
