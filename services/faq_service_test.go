package services

import (
	"testing"
	"time"

	"fibresite/models"
	"fibresite/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func faqFixture(category, question string, order int) models.FAQ {
	now := time.Now()
	return models.FAQ{
		ID:        primitive.NewObjectID(),
		Category:  category,
		Question:  question,
		Answer:    "See our support pages.",
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestGetFAQsSortedByCategoryThenOrder(t *testing.T) {
	coll := testutil.NewMemCollection()
	require.NoError(t, coll.Seed(
		faqFixture("billing", "How do I pay?", 2),
		faqFixture("technical", "Why is my connection slow?", 1),
		faqFixture("billing", "When is my bill due?", 1),
	))
	svc := NewFAQServiceWithCollection(coll)

	faqs, err := svc.GetFAQs()
	require.NoError(t, err)
	require.Len(t, faqs, 3)

	assert.Equal(t, "When is my bill due?", faqs[0].Question)
	assert.Equal(t, "How do I pay?", faqs[1].Question)
	assert.Equal(t, "Why is my connection slow?", faqs[2].Question)
}

func TestReplaceCategorySwapsEntireCategory(t *testing.T) {
	coll := testutil.NewMemCollection()
	anchor := faqFixture("billing", "How do I pay?", 1)
	require.NoError(t, coll.Seed(
		anchor,
		faqFixture("billing", "When is my bill due?", 2),
		faqFixture("technical", "Why is my connection slow?", 1),
	))
	svc := NewFAQServiceWithCollection(coll)

	replaced, err := svc.ReplaceCategory(anchor.ID, &models.FAQBatchRequest{
		Category: "billing",
		Order:    1,
		FAQs: []models.FAQEntry{
			{Question: "Which payment methods do you accept?", Answer: "M-Pesa and card."},
		},
	})
	require.NoError(t, err)
	require.Len(t, replaced, 1)

	faqs, err := svc.GetFAQs()
	require.NoError(t, err)
	require.Len(t, faqs, 2)

	assert.Equal(t, "Which payment methods do you accept?", faqs[0].Question)
	assert.Equal(t, "technical", faqs[1].Category)
}

func TestDeleteFAQUnknownID(t *testing.T) {
	svc := NewFAQServiceWithCollection(testutil.NewMemCollection())

	err := svc.DeleteFAQ(primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}
