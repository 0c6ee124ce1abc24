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

type AccessoryService struct {
	accessoryCollection Collection
}

func NewAccessoryService() *AccessoryService {
	return NewAccessoryServiceWithCollection(database.GetCollection(database.AccessoriesCollection))
}

// NewAccessoryServiceWithCollection injects the backing collection, for tests.
func NewAccessoryServiceWithCollection(coll Collection) *AccessoryService {
	return &AccessoryService{accessoryCollection: coll}
}

// GetAccessories lists accessories newest first. When activeOnly is set only
// items currently shown on the site are returned.
func (as *AccessoryService) GetAccessories(activeOnly bool) ([]models.Accessory, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	cursor, err := as.accessoryCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accessories := []models.Accessory{}
	if err = cursor.All(ctx, &accessories); err != nil {
		return nil, err
	}

	return accessories, nil
}

func (as *AccessoryService) GetAccessory(accessoryID primitive.ObjectID) (*models.Accessory, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var accessory models.Accessory
	err := as.accessoryCollection.FindOne(ctx, bson.M{"_id": accessoryID}).Decode(&accessory)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &accessory, nil
}

func (as *AccessoryService) CreateAccessory(req *models.AccessoryRequest, asset *models.MediaAsset) (*models.Accessory, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	accessory := models.Accessory{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    req.IsActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if asset != nil {
		accessory.ImageURL = asset.URL
		accessory.MediaID = asset.ID
	}

	if _, err := as.accessoryCollection.InsertOne(ctx, accessory); err != nil {
		return nil, err
	}

	return &accessory, nil
}

// UpdateAccessory applies the request and, when a new asset is supplied, swaps
// the image reference. The previous media ID is returned so the caller can
// clean up the replaced remote object after the document is updated.
func (as *AccessoryService) UpdateAccessory(accessoryID primitive.ObjectID, req *models.AccessoryRequest, asset *models.MediaAsset) (*models.Accessory, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := as.GetAccessory(accessoryID)
	if err != nil {
		return nil, "", err
	}

	update := bson.M{
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"is_active":   req.IsActive,
		"updated_at":  time.Now(),
	}

	oldMediaID := ""
	if asset != nil {
		update["image_url"] = asset.URL
		update["media_id"] = asset.ID
		oldMediaID = existing.MediaID
	}

	var updated models.Accessory
	err = as.accessoryCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": accessoryID},
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

// ToggleAccessory flips visibility and leaves every other field untouched.
func (as *AccessoryService) ToggleAccessory(accessoryID primitive.ObjectID) (*models.Accessory, error) {
	existing, err := as.GetAccessory(accessoryID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.Accessory
	err = as.accessoryCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": accessoryID},
		bson.M{"$set": bson.M{
			"is_active":  !existing.IsActive,
			"updated_at": time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &updated, nil
}

// DeleteAccessory removes the document and returns the media ID that owned it,
// empty when no image was attached.
func (as *AccessoryService) DeleteAccessory(accessoryID primitive.ObjectID) (string, error) {
	existing, err := as.GetAccessory(accessoryID)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := as.accessoryCollection.DeleteOne(ctx, bson.M{"_id": accessoryID})
	if err != nil {
		return "", err
	}
	if result.DeletedCount == 0 {
		return "", ErrNotFound
	}

	return existing.MediaID, nil
}
