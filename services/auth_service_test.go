package services

import (
	"testing"
	"time"

	"fibresite/models"
	"fibresite/testutil"
	"fibresite/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestAuthService() (*AuthService, *testutil.MemCollection, *testutil.MemCollection) {
	users := testutil.NewMemCollection()
	sessions := testutil.NewMemCollection()
	return NewAuthServiceWithCollections(users, sessions), users, sessions
}

func TestSignupLoginAndResolveSession(t *testing.T) {
	svc, _, _ := newTestAuthService()

	user, sessionID, err := svc.Signup("new@example.com", "hunter22", "test-agent", "127.0.0.1")
	require.NoError(t, err)
	assert.Len(t, sessionID, 64)
	assert.Equal(t, models.RoleUser, user.Role)

	resolved, err := svc.ResolveSession(sessionID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", resolved.Email)

	_, loginSession, err := svc.Login("new@example.com", "hunter22", "test-agent", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, sessionID, loginSession)

	require.NoError(t, svc.Logout(sessionID))
	_, err = svc.ResolveSession(sessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _, err := svc.Signup("dup@example.com", "hunter22", "", "")
	require.NoError(t, err)

	_, _, err = svc.Signup("dup@example.com", "other-pass", "", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _, err := svc.Signup("user@example.com", "correct-horse", "", "")
	require.NoError(t, err)

	_, _, err = svc.Login("user@example.com", "wrong-horse", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "whatever", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveSessionExpired(t *testing.T) {
	svc, users, sessions := newTestAuthService()

	hashed, err := utils.HashPassword("hunter22")
	require.NoError(t, err)
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     "stale@example.com",
		Password:  hashed,
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, users.Seed(user))
	require.NoError(t, sessions.Seed(models.Session{
		ID:        primitive.NewObjectID(),
		SessionID: "expired-session",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
		CreatedAt: time.Now().Add(-25 * time.Hour),
	}))

	_, err = svc.ResolveSession("expired-session")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, sessions.Len(), "expired session is purged on access")
}
