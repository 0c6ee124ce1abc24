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

func planFixture(name string, position int) models.Plan {
	now := time.Now()
	return models.Plan{
		ID:               primitive.NewObjectID(),
		Name:             name,
		Type:             models.PlanTypeResidential,
		Speed:            20,
		Price:            2500,
		SupportedDevices: 5,
		Features:         []string{"Unlimited data"},
		Position:         position,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestGetPlansSortedByPosition(t *testing.T) {
	coll := testutil.NewMemCollection()
	require.NoError(t, coll.Seed(
		planFixture("Premium", 3),
		planFixture("Basic", 1),
		planFixture("Standard", 2),
	))
	svc := NewPlanServiceWithCollection(coll)

	plans, err := svc.GetPlans()
	require.NoError(t, err)
	require.Len(t, plans, 3)

	assert.Equal(t, "Basic", plans[0].Name)
	assert.Equal(t, "Standard", plans[1].Name)
	assert.Equal(t, "Premium", plans[2].Name)
}

func TestCreatePlanThenGetRoundTrip(t *testing.T) {
	svc := NewPlanServiceWithCollection(testutil.NewMemCollection())

	created, err := svc.CreatePlan(&models.PlanRequest{
		Name:             "Jumbo",
		Speed:            40,
		Price:            4100,
		SupportedDevices: 13,
		Features:         []string{"Unlimited data", "Free installation"},
		IsPopular:        true,
		Position:         2,
	}, nil)
	require.NoError(t, err)

	fetched, err := svc.GetPlan(created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Jumbo", fetched.Name)
	assert.Equal(t, models.PlanTypeResidential, fetched.Type, "type defaults when omitted")
	assert.Equal(t, 40, fetched.Speed)
	assert.Equal(t, 4100, fetched.Price)
	assert.Equal(t, []string{"Unlimited data", "Free installation"}, fetched.Features)
	assert.True(t, fetched.IsPopular)
	assert.Empty(t, fetched.ImageURL)
	assert.Empty(t, fetched.MediaID)
}

func TestGetPlanUnknownID(t *testing.T) {
	svc := NewPlanServiceWithCollection(testutil.NewMemCollection())

	_, err := svc.GetPlan(primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePlanWithNewImageReturnsOldMediaID(t *testing.T) {
	coll := testutil.NewMemCollection()
	plan := planFixture("Basic", 1)
	plan.ImageURL = "https://media.example.com/plans/old.png"
	plan.MediaID = "plans/old.png"
	require.NoError(t, coll.Seed(plan))
	svc := NewPlanServiceWithCollection(coll)

	updated, oldMediaID, err := svc.UpdatePlan(plan.ID, &models.PlanRequest{
		Name:             "Basic",
		Speed:            20,
		Price:            2500,
		SupportedDevices: 5,
		Features:         []string{"Unlimited data"},
		Position:         1,
	}, &models.MediaAsset{URL: "https://media.example.com/plans/new.png", ID: "plans/new.png"})
	require.NoError(t, err)

	assert.Equal(t, "plans/old.png", oldMediaID)
	assert.Equal(t, "plans/new.png", updated.MediaID)
	assert.Equal(t, "https://media.example.com/plans/new.png", updated.ImageURL)
}

func TestUpdatePlanWithoutImageKeepsMedia(t *testing.T) {
	coll := testutil.NewMemCollection()
	plan := planFixture("Basic", 1)
	plan.MediaID = "plans/keep.png"
	require.NoError(t, coll.Seed(plan))
	svc := NewPlanServiceWithCollection(coll)

	updated, oldMediaID, err := svc.UpdatePlan(plan.ID, &models.PlanRequest{
		Name:             "Basic Plus",
		Speed:            25,
		Price:            2800,
		SupportedDevices: 6,
		Features:         []string{"Unlimited data"},
		Position:         1,
	}, nil)
	require.NoError(t, err)

	assert.Empty(t, oldMediaID)
	assert.Equal(t, "plans/keep.png", updated.MediaID)
	assert.Equal(t, "Basic Plus", updated.Name)
}

func TestDeletePlanReturnsMediaIDForCleanup(t *testing.T) {
	coll := testutil.NewMemCollection()
	plan := planFixture("Basic", 1)
	plan.MediaID = "plans/basic.png"
	require.NoError(t, coll.Seed(plan))
	svc := NewPlanServiceWithCollection(coll)

	mediaID, err := svc.DeletePlan(plan.ID)
	require.NoError(t, err)

	assert.Equal(t, "plans/basic.png", mediaID)
	assert.Equal(t, 0, coll.Len())
}
