package database

import (
	"context"
	"log"
	"time"

	"fibresite/models"
	"fibresite/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seed creates the default admin account and the singleton content
// documents. Every step is an idempotent upsert, so running it on each
// boot is safe.
func Seed(adminEmail, adminPass string) error {
	log.Println("Seeding default documents...")

	if err := seedDefaultAdmin(adminEmail, adminPass); err != nil {
		return err
	}

	if err := seedSettings(); err != nil {
		return err
	}

	if err := seedAbout(); err != nil {
		return err
	}

	log.Println("Database seeding completed successfully")
	return nil
}

// seedDefaultAdmin creates the bootstrap admin when no users exist yet.
func seedDefaultAdmin(email, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := GetCollection(UsersCollection)

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}

	if count > 0 {
		log.Println("Users already exist, skipping default admin creation")
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hashedPassword,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := collection.InsertOne(ctx, admin); err != nil {
		return err
	}

	log.Printf("Default admin user created: %s", email)
	return nil
}

func seedSettings() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	defaults := models.DefaultSettings()
	now := time.Now()

	_, err := GetCollection(SettingsCollection).UpdateOne(ctx,
		bson.M{"key": models.SiteSettingsKey},
		bson.M{
			"$setOnInsert": bson.M{
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
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func seedAbout() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	defaults := models.DefaultAbout()
	now := time.Now()

	_, err := GetCollection(AboutCollection).UpdateOne(ctx,
		bson.M{"key": models.AboutKey},
		bson.M{
			"$setOnInsert": bson.M{
				"key":             defaults.Key,
				"title":           defaults.Title,
				"subtitle":        defaults.Subtitle,
				"description":     defaults.Description,
				"main_image":      "",
				"secondary_image": "",
				"feature_boxes":   defaults.FeatureBoxes,
				"created_at":      now,
				"updated_at":      now,
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// CleanupExpiredSessions removes sessions past their TTL. The TTL index
// already handles this server side; the sweep keeps things tidy when the
// index is missing, e.g. against a fresh database.
func CleanupExpiredSessions() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := GetCollection(SessionsCollection).DeleteMany(ctx,
		bson.M{"expires_at": bson.M{"$lt": time.Now()}})
	return err
}
