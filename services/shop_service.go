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

type ShopService struct {
	shopCollection Collection
}

func NewShopService() *ShopService {
	return NewShopServiceWithCollection(database.GetCollection(database.ShopsCollection))
}

// NewShopServiceWithCollection injects the backing collection, for tests.
func NewShopServiceWithCollection(coll Collection) *ShopService {
	return &ShopService{shopCollection: coll}
}

// GetShops returns all shops, newest first.
func (ss *ShopService) GetShops() ([]models.Shop, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := ss.shopCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	shops := []models.Shop{}
	if err = cursor.All(ctx, &shops); err != nil {
		return nil, err
	}

	return shops, nil
}

func (ss *ShopService) GetShop(shopID primitive.ObjectID) (*models.Shop, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shop models.Shop
	err := ss.shopCollection.FindOne(ctx, bson.M{"_id": shopID}).Decode(&shop)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &shop, nil
}

func (ss *ShopService) CreateShop(req *models.ShopRequest, asset *models.MediaAsset) (*models.Shop, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hours := models.DefaultOpeningHours()
	if req.OpeningHours != nil {
		hours = *req.OpeningHours
	}

	shop := models.Shop{
		ID:            primitive.NewObjectID(),
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		ContactNumber: req.ContactNumber,
		Location:      req.Location,
		OpeningHours:  hours,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if asset != nil {
		shop.ImageURL = asset.URL
		shop.MediaID = asset.ID
	}

	if _, err := ss.shopCollection.InsertOne(ctx, shop); err != nil {
		return nil, err
	}

	return &shop, nil
}

func (ss *ShopService) UpdateShop(shopID primitive.ObjectID, req *models.ShopRequest, asset *models.MediaAsset) (*models.Shop, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := ss.GetShop(shopID)
	if err != nil {
		return nil, "", err
	}

	update := bson.M{
		"name":           req.Name,
		"address":        req.Address,
		"city":           req.City,
		"contact_number": req.ContactNumber,
		"location":       req.Location,
		"updated_at":     time.Now(),
	}

	if req.OpeningHours != nil {
		update["opening_hours"] = *req.OpeningHours
	}

	oldMediaID := ""
	if asset != nil {
		update["image_url"] = asset.URL
		update["media_id"] = asset.ID
		oldMediaID = existing.MediaID
	}

	var updated models.Shop
	err = ss.shopCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": shopID},
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

func (ss *ShopService) DeleteShop(shopID primitive.ObjectID) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := ss.GetShop(shopID)
	if err != nil {
		return "", err
	}

	if _, err := ss.shopCollection.DeleteOne(ctx, bson.M{"_id": shopID}); err != nil {
		return "", err
	}

	return existing.MediaID, nil
}
