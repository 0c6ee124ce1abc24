package services

import (
	"context"
	"time"

	"fibresite/config"
	"fibresite/database"
	"fibresite/models"
	"fibresite/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthService struct {
	userCollection    Collection
	sessionCollection Collection
	sessionTTL        time.Duration
}

func NewAuthService() *AuthService {
	return NewAuthServiceWithCollections(
		database.GetCollection(database.UsersCollection),
		database.GetCollection(database.SessionsCollection),
	)
}

// NewAuthServiceWithCollections injects the backing collections, for tests.
func NewAuthServiceWithCollections(users, sessions Collection) *AuthService {
	ttl := 24 * time.Hour
	if config.AppConfig != nil {
		ttl = config.AppConfig.SessionMaxAge
	}
	return &AuthService{
		userCollection:    users,
		sessionCollection: sessions,
		sessionTTL:        ttl,
	}
}

// Login verifies credentials and opens a server-side session.
func (as *AuthService) Login(email, password, userAgent, clientIP string) (*models.User, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := as.userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	sessionID, err := as.createSession(ctx, user.ID, userAgent, clientIP)
	if err != nil {
		return nil, "", err
	}

	return &user, sessionID, nil
}

// Signup registers a new user and opens a session for it.
func (as *AuthService) Signup(email, password, userAgent, clientIP string) (*models.User, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := as.userCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hashed,
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := as.userCollection.InsertOne(ctx, user); err != nil {
		return nil, "", err
	}

	sessionID, err := as.createSession(ctx, user.ID, userAgent, clientIP)
	if err != nil {
		return nil, "", err
	}

	return &user, sessionID, nil
}

// Logout deletes the server-side session.
func (as *AuthService) Logout(sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := as.sessionCollection.DeleteOne(ctx, bson.M{"session_id": sessionID})
	return err
}

// ResolveSession implements middleware.SessionLookup. An expired or
// unknown session id counts as unauthenticated.
func (as *AuthService) ResolveSession(sessionID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var session models.Session
	err := as.sessionCollection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&session)
	if err != nil {
		return nil, ErrNotFound
	}

	if session.Expired() {
		_, _ = as.sessionCollection.DeleteOne(ctx, bson.M{"session_id": sessionID})
		return nil, ErrNotFound
	}

	var user models.User
	err = as.userCollection.FindOne(ctx, bson.M{"_id": session.UserID}).Decode(&user)
	if err != nil {
		return nil, ErrNotFound
	}

	return &user, nil
}

func (as *AuthService) createSession(ctx context.Context, userID primitive.ObjectID, userAgent, clientIP string) (string, error) {
	sessionID, err := utils.GenerateSessionID()
	if err != nil {
		return "", err
	}

	session := models.Session{
		ID:        primitive.NewObjectID(),
		SessionID: sessionID,
		UserID:    userID,
		UserAgent: userAgent,
		ClientIP:  clientIP,
		ExpiresAt: time.Now().Add(as.sessionTTL),
		CreatedAt: time.Now(),
	}

	if _, err := as.sessionCollection.InsertOne(ctx, session); err != nil {
		return "", err
	}

	return sessionID, nil
}
