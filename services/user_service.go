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

type UserService struct {
	userCollection    Collection
	sessionCollection Collection
}

func NewUserService() *UserService {
	return NewUserServiceWithCollections(
		database.GetCollection(database.UsersCollection),
		database.GetCollection(database.SessionsCollection),
	)
}

// NewUserServiceWithCollections injects the backing collections, for tests.
func NewUserServiceWithCollections(users, sessions Collection) *UserService {
	return &UserService{userCollection: users, sessionCollection: sessions}
}

// GetUsers lists all accounts, newest first, without password hashes.
func (us *UserService) GetUsers() ([]models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := us.userCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// GetPublicUsers lists registered accounts in the reduced public shape.
func (us *UserService) GetPublicUsers() ([]models.PublicUser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := us.userCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.PublicUser{}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) GetUser(userID primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := us.userCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (us *UserService) UpdateRole(userID primitive.ObjectID, role string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.User
	err := us.userCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"role":       role,
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

// DeleteUser removes a non-admin account and invalidates its open sessions.
// Admin accounts cannot be deleted through this path.
func (us *UserService) DeleteUser(userID primitive.ObjectID) error {
	user, err := us.GetUser(userID)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		return ErrAdminProtected
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := us.userCollection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	// Best effort: orphaned sessions expire via TTL anyway.
	_, _ = us.sessionCollection.DeleteMany(ctx, bson.M{"user_id": userID})

	return nil
}
