package services

import (
	"context"
	"errors"
	"time"

	"fibresite/database"
	"fibresite/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingsService struct {
	settingsCollection Collection
}

func NewSettingsService() *SettingsService {
	return NewSettingsServiceWithCollection(database.GetCollection(database.SettingsCollection))
}

// NewSettingsServiceWithCollection injects the backing collection, for tests.
func NewSettingsServiceWithCollection(coll Collection) *SettingsService {
	return &SettingsService{settingsCollection: coll}
}

// GetSettings returns the site settings singleton, creating it with defaults
// on first access. The upsert keys on the fixed document key so concurrent
// first reads resolve to a single document.
func (ss *SettingsService) GetSettings() (*models.Settings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	defaults := models.DefaultSettings()
	now := time.Now()

	var settings models.Settings
	err := ss.settingsCollection.FindOneAndUpdate(ctx,
		bson.M{"key": models.SiteSettingsKey},
		bson.M{"$setOnInsert": bson.M{
			"key":              defaults.Key,
			"font_family":      defaults.FontFamily,
			"font_size":        defaults.FontSize,
			"font_weight":      defaults.FontWeight,
			"primary_color":    defaults.PrimaryColor,
			"secondary_color":  defaults.SecondaryColor,
			"site_name":        defaults.SiteName,
			"site_description": defaults.SiteDescription,
			"created_at":       now,
			"updated_at":       now,
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&settings)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// UpdateSettings applies only the fields present in the request; empty fields
// leave the stored value alone.
func (ss *SettingsService) UpdateSettings(req *models.SettingsRequest) (*models.Settings, error) {
	// Ensure the singleton exists before patching it.
	if _, err := ss.GetSettings(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"updated_at": time.Now()}
	if req.FontFamily != "" {
		update["font_family"] = req.FontFamily
	}
	if req.FontSize != "" {
		update["font_size"] = req.FontSize
	}
	if req.FontWeight != "" {
		update["font_weight"] = req.FontWeight
	}
	if req.PrimaryColor != "" {
		update["primary_color"] = req.PrimaryColor
	}
	if req.SecondaryColor != "" {
		update["secondary_color"] = req.SecondaryColor
	}
	if req.SiteName != "" {
		update["site_name"] = req.SiteName
	}
	if req.SiteDescription != "" {
		update["site_description"] = req.SiteDescription
	}

	var updated models.Settings
	err := ss.settingsCollection.FindOneAndUpdate(ctx,
		bson.M{"key": models.SiteSettingsKey},
		bson.M{"$set": update},
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
