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

type BannerService struct {
	bannerCollection Collection
}

func NewBannerService() *BannerService {
	return NewBannerServiceWithCollection(database.GetCollection(database.BannersCollection))
}

// NewBannerServiceWithCollection injects the backing collection, for tests.
func NewBannerServiceWithCollection(coll Collection) *BannerService {
	return &BannerService{bannerCollection: coll}
}

// GetBanners returns banners, newest first. With activeOnly set, inactive
// banners are filtered out without ever being deleted.
func (bs *BannerService) GetBanners(activeOnly bool) ([]models.Banner, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	cursor, err := bs.bannerCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	banners := []models.Banner{}
	if err = cursor.All(ctx, &banners); err != nil {
		return nil, err
	}

	return banners, nil
}

func (bs *BannerService) GetBanner(bannerID primitive.ObjectID) (*models.Banner, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var banner models.Banner
	err := bs.bannerCollection.FindOne(ctx, bson.M{"_id": bannerID}).Decode(&banner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &banner, nil
}

func (bs *BannerService) CreateBanner(req *models.BannerRequest, asset *models.MediaAsset) (*models.Banner, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bgColor := req.BgColor
	if bgColor == "" {
		bgColor = models.DefaultBannerColor
	}

	banner := models.Banner{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Button1Text: req.Button1Text,
		Button1Link: req.Button1Link,
		Button2Text: req.Button2Text,
		Button2Link: req.Button2Link,
		BgColor:     bgColor,
		IsActive:    req.IsActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if asset != nil {
		banner.ImageURL = asset.URL
		banner.MediaID = asset.ID
	}

	if _, err := bs.bannerCollection.InsertOne(ctx, banner); err != nil {
		return nil, err
	}

	return &banner, nil
}

func (bs *BannerService) UpdateBanner(bannerID primitive.ObjectID, req *models.BannerRequest, asset *models.MediaAsset) (*models.Banner, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := bs.GetBanner(bannerID)
	if err != nil {
		return nil, "", err
	}

	bgColor := req.BgColor
	if bgColor == "" {
		bgColor = existing.BgColor
	}

	update := bson.M{
		"title":        req.Title,
		"subtitle":     req.Subtitle,
		"button1_text": req.Button1Text,
		"button1_link": req.Button1Link,
		"button2_text": req.Button2Text,
		"button2_link": req.Button2Link,
		"bg_color":     bgColor,
		"is_active":    req.IsActive,
		"updated_at":   time.Now(),
	}

	oldMediaID := ""
	if asset != nil {
		update["image_url"] = asset.URL
		update["media_id"] = asset.ID
		oldMediaID = existing.MediaID
	}

	var updated models.Banner
	err = bs.bannerCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": bannerID},
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

// ToggleBanner flips is_active and nothing else.
func (bs *BannerService) ToggleBanner(bannerID primitive.ObjectID) (*models.Banner, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := bs.GetBanner(bannerID)
	if err != nil {
		return nil, err
	}

	var updated models.Banner
	err = bs.bannerCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": bannerID},
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

func (bs *BannerService) DeleteBanner(bannerID primitive.ObjectID) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := bs.GetBanner(bannerID)
	if err != nil {
		return "", err
	}

	if _, err := bs.bannerCollection.DeleteOne(ctx, bson.M{"_id": bannerID}); err != nil {
		return "", err
	}

	return existing.MediaID, nil
}
