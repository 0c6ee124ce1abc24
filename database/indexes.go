package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes creates necessary database indexes
func CreateIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Creating database indexes...")

	// Users collection indexes
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	if _, err := GetCollection(UsersCollection).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %v", err)
	}

	// Sessions collection indexes; expires_at carries a TTL so MongoDB
	// reaps stale sessions on its own.
	sessionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}
	if _, err := GetCollection(SessionsCollection).Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("failed to create session indexes: %v", err)
	}

	// Plans collection indexes
	planIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "position", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "type", Value: 1}},
		},
	}
	if _, err := GetCollection(PlansCollection).Indexes().CreateMany(ctx, planIndexes); err != nil {
		return fmt.Errorf("failed to create plan indexes: %v", err)
	}

	// FAQ listing is always category then order
	faqIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "category", Value: 1}, {Key: "order", Value: 1}},
		},
	}
	if _, err := GetCollection(FAQsCollection).Indexes().CreateMany(ctx, faqIndexes); err != nil {
		return fmt.Errorf("failed to create faq indexes: %v", err)
	}

	// Banners and accessories are filtered on is_active
	activeIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}
	if _, err := GetCollection(BannersCollection).Indexes().CreateMany(ctx, activeIndex); err != nil {
		return fmt.Errorf("failed to create banner indexes: %v", err)
	}
	if _, err := GetCollection(AccessoriesCollection).Indexes().CreateMany(ctx, activeIndex); err != nil {
		return fmt.Errorf("failed to create accessory indexes: %v", err)
	}

	// Payment methods are listed by explicit order
	paymentIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "order", Value: 1}, {Key: "method_name", Value: 1}},
		},
	}
	if _, err := GetCollection(PaymentMethodsCollection).Indexes().CreateMany(ctx, paymentIndexes); err != nil {
		return fmt.Errorf("failed to create payment method indexes: %v", err)
	}

	// Singleton documents are addressed by a fixed key
	singletonIndex := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := GetCollection(SettingsCollection).Indexes().CreateMany(ctx, singletonIndex); err != nil {
		return fmt.Errorf("failed to create settings indexes: %v", err)
	}
	if _, err := GetCollection(AboutCollection).Indexes().CreateMany(ctx, singletonIndex); err != nil {
		return fmt.Errorf("failed to create about indexes: %v", err)
	}

	log.Println("Database indexes created successfully")
	return nil
}
