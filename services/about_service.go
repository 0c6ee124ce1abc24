package services

import (
	"context"
	"time"

	"fibresite/database"
	"fibresite/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AboutService struct {
	aboutCollection Collection
}

func NewAboutService() *AboutService {
	return NewAboutServiceWithCollection(database.GetCollection(database.AboutCollection))
}

// NewAboutServiceWithCollection injects the backing collection, for tests.
func NewAboutServiceWithCollection(coll Collection) *AboutService {
	return &AboutService{aboutCollection: coll}
}

// GetAbout returns the about-section singleton, creating the default content
// on first access.
func (as *AboutService) GetAbout() (*models.About, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	defaults := models.DefaultAbout()
	now := time.Now()

	var about models.About
	err := as.aboutCollection.FindOneAndUpdate(ctx,
		bson.M{"key": models.AboutKey},
		bson.M{"$setOnInsert": bson.M{
			"key":             defaults.Key,
			"title":           defaults.Title,
			"subtitle":        defaults.Subtitle,
			"description":     defaults.Description,
			"main_image":      "",
			"secondary_image": "",
			"feature_boxes":   defaults.FeatureBoxes,
			"created_at":      now,
			"updated_at":      now,
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&about)
	if err != nil {
		return nil, err
	}

	return &about, nil
}

// AboutUpdate carries the text fields plus optional image operations. A nil
// asset with the matching delete flag unset leaves that image alone.
type AboutUpdate struct {
	Request              *models.AboutRequest
	MainAsset            *models.MediaAsset
	SecondaryAsset       *models.MediaAsset
	DeleteMainImage      bool
	DeleteSecondaryImage bool
}

// UpdateAbout replaces the text content and applies any image swaps or
// removals. Replaced or removed media IDs are returned so the caller can
// delete the remote objects once the document reflects the change.
func (as *AboutService) UpdateAbout(upd *AboutUpdate) (*models.About, []string, error) {
	existing, err := as.GetAbout()
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{
		"title":       upd.Request.Title,
		"subtitle":    upd.Request.Subtitle,
		"description": upd.Request.Description,
		"updated_at":  time.Now(),
	}
	if upd.Request.FeatureBoxes != nil {
		update["feature_boxes"] = upd.Request.FeatureBoxes
	}

	staleMedia := []string{}

	switch {
	case upd.MainAsset != nil:
		update["main_image"] = upd.MainAsset.URL
		update["main_media_id"] = upd.MainAsset.ID
		if existing.MainMediaID != "" {
			staleMedia = append(staleMedia, existing.MainMediaID)
		}
	case upd.DeleteMainImage:
		update["main_image"] = ""
		update["main_media_id"] = ""
		if existing.MainMediaID != "" {
			staleMedia = append(staleMedia, existing.MainMediaID)
		}
	}

	switch {
	case upd.SecondaryAsset != nil:
		update["secondary_image"] = upd.SecondaryAsset.URL
		update["secondary_media_id"] = upd.SecondaryAsset.ID
		if existing.SecondaryMediaID != "" {
			staleMedia = append(staleMedia, existing.SecondaryMediaID)
		}
	case upd.DeleteSecondaryImage:
		update["secondary_image"] = ""
		update["secondary_media_id"] = ""
		if existing.SecondaryMediaID != "" {
			staleMedia = append(staleMedia, existing.SecondaryMediaID)
		}
	}

	var updated models.About
	err = as.aboutCollection.FindOneAndUpdate(ctx,
		bson.M{"key": models.AboutKey},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, nil, err
	}

	return &updated, staleMedia, nil
}
