package services

import (
	"context"
	"errors"
	"time"

	"fibresite/database"
	"fibresite/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FAQService struct {
	faqCollection Collection
}

func NewFAQService() *FAQService {
	return NewFAQServiceWithCollection(database.GetCollection(database.FAQsCollection))
}

// NewFAQServiceWithCollection injects the backing collection, for tests.
func NewFAQServiceWithCollection(coll Collection) *FAQService {
	return &FAQService{faqCollection: coll}
}

// GetFAQs returns every FAQ grouped by category then category order.
func (fs *FAQService) GetFAQs() ([]models.FAQ, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := fs.faqCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "order", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	faqs := []models.FAQ{}
	if err = cursor.All(ctx, &faqs); err != nil {
		return nil, err
	}

	return faqs, nil
}

func (fs *FAQService) GetFAQ(faqID primitive.ObjectID) (*models.FAQ, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var faq models.FAQ
	err := fs.faqCollection.FindOne(ctx, bson.M{"_id": faqID}).Decode(&faq)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &faq, nil
}

// CreateCategory inserts every FAQ of a category in one batch.
func (fs *FAQService) CreateCategory(req *models.FAQBatchRequest) ([]models.FAQ, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	faqs := make([]models.FAQ, 0, len(req.FAQs))
	docs := make([]interface{}, 0, len(req.FAQs))
	for _, entry := range req.FAQs {
		faq := models.FAQ{
			ID:        primitive.NewObjectID(),
			Category:  req.Category,
			Question:  entry.Question,
			Answer:    entry.Answer,
			Order:     req.Order,
			CreatedAt: now,
			UpdatedAt: now,
		}
		faqs = append(faqs, faq)
		docs = append(docs, faq)
	}

	if _, err := fs.faqCollection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}

	return faqs, nil
}

// ReplaceCategory swaps out every FAQ of the category that the referenced
// FAQ belongs to. The id only anchors the category; the batch fully
// replaces its content.
func (fs *FAQService) ReplaceCategory(faqID primitive.ObjectID, req *models.FAQBatchRequest) ([]models.FAQ, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	original, err := fs.GetFAQ(faqID)
	if err != nil {
		return nil, err
	}

	if _, err := fs.faqCollection.DeleteMany(ctx, bson.M{"category": original.Category}); err != nil {
		return nil, err
	}

	return fs.CreateCategory(req)
}

func (fs *FAQService) DeleteFAQ(faqID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := fs.faqCollection.DeleteOne(ctx, bson.M{"_id": faqID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
