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

type PlanService struct {
	planCollection Collection
}

func NewPlanService() *PlanService {
	return NewPlanServiceWithCollection(database.GetCollection(database.PlansCollection))
}

// NewPlanServiceWithCollection injects the backing collection, for tests.
func NewPlanServiceWithCollection(coll Collection) *PlanService {
	return &PlanService{planCollection: coll}
}

// GetPlans returns all plans sorted by their explicit position.
func (ps *PlanService) GetPlans() ([]models.Plan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := ps.planCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "position", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := []models.Plan{}
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}

	return plans, nil
}

func (ps *PlanService) GetPlan(planID primitive.ObjectID) (*models.Plan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var plan models.Plan
	err := ps.planCollection.FindOne(ctx, bson.M{"_id": planID}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &plan, nil
}

// CreatePlan inserts a new plan; asset may be nil when no image was uploaded.
func (ps *PlanService) CreatePlan(req *models.PlanRequest, asset *models.MediaAsset) (*models.Plan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	planType := req.Type
	if planType == "" {
		planType = models.PlanTypeResidential
	}

	plan := models.Plan{
		ID:               primitive.NewObjectID(),
		Name:             req.Name,
		Type:             planType,
		Speed:            req.Speed,
		Price:            req.Price,
		SupportedDevices: req.SupportedDevices,
		Features:         req.Features,
		IsPopular:        req.IsPopular,
		Position:         req.Position,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if asset != nil {
		plan.ImageURL = asset.URL
		plan.MediaID = asset.ID
	}

	if _, err := ps.planCollection.InsertOne(ctx, plan); err != nil {
		return nil, err
	}

	return &plan, nil
}

// UpdatePlan applies the request to an existing plan. When asset is non-nil
// the image reference is swapped and the previous media id is returned so
// the caller can delete the orphaned remote asset.
func (ps *PlanService) UpdatePlan(planID primitive.ObjectID, req *models.PlanRequest, asset *models.MediaAsset) (*models.Plan, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := ps.GetPlan(planID)
	if err != nil {
		return nil, "", err
	}

	planType := req.Type
	if planType == "" {
		planType = existing.Type
	}

	update := bson.M{
		"name":              req.Name,
		"type":              planType,
		"speed":             req.Speed,
		"price":             req.Price,
		"supported_devices": req.SupportedDevices,
		"features":          req.Features,
		"is_popular":        req.IsPopular,
		"position":          req.Position,
		"updated_at":        time.Now(),
	}

	oldMediaID := ""
	if asset != nil {
		update["image_url"] = asset.URL
		update["media_id"] = asset.ID
		oldMediaID = existing.MediaID
	}

	var updated models.Plan
	err = ps.planCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": planID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	return &updated, oldMediaID, nil
}

// DeletePlan removes a plan and returns its media id, if any, for remote
// cleanup by the caller.
func (ps *PlanService) DeletePlan(planID primitive.ObjectID) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := ps.GetPlan(planID)
	if err != nil {
		return "", err
	}

	if _, err := ps.planCollection.DeleteOne(ctx, bson.M{"_id": planID}); err != nil {
		return "", err
	}

	return existing.MediaID, nil
}
