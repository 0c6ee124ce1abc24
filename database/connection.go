package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

// Connect establishes the MongoDB client and database handles. The driver
// connects lazily, so this succeeds even when the server is unreachable;
// individual operations surface errors per request instead.
func Connect(mongoURI, dbName string) error {
	clientOptions := options.Client().
		ApplyURI(mongoURI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetMaxConnIdleTime(30 * time.Second).
		SetServerSelectionTimeout(10 * time.Second).
		SetSocketTimeout(10 * time.Second).
		SetConnectTimeout(10 * time.Second).
		SetRetryWrites(true).
		SetRetryReads(true)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		// A malformed URI must not leave the handles nil: fall back to a
		// default client so handlers fail per request instead of the
		// process crashing on the first collection access.
		log.Printf("Warning: invalid MongoDB configuration, operations will fail until fixed: %v", err)
		client, err = mongo.Connect(ctx, options.Client())
		if err != nil {
			return fmt.Errorf("failed to create MongoDB client: %v", err)
		}
		database = client.Database(dbName)
		return nil
	}

	database = client.Database(dbName)

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		// Keep serving; the health endpoint reports the degraded state.
		log.Printf("Warning: MongoDB not reachable yet: %v", err)
		return nil
	}

	log.Printf("Successfully connected to MongoDB database: %s", dbName)
	return nil
}

// Disconnect closes the MongoDB connection
func Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to disconnect from MongoDB: %v", err)
		}
		log.Println("Disconnected from MongoDB")
	}

	return nil
}

// GetClient returns the MongoDB client
func GetClient() *mongo.Client {
	return client
}

// GetDatabase returns the MongoDB database
func GetDatabase() *mongo.Database {
	return database
}

// GetCollection returns a MongoDB collection
func GetCollection(collectionName string) *mongo.Collection {
	if database == nil {
		panic(fmt.Sprintf("database not initialized when trying to get collection: %s. Make sure database.Connect() is called first.", collectionName))
	}
	return database.Collection(collectionName)
}

// Ping checks the database connection
func Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if client == nil {
		return fmt.Errorf("database client not initialized")
	}

	return client.Ping(ctx, readpref.Primary())
}
