package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionID(t *testing.T) {
	first, err := GenerateSessionID()
	require.NoError(t, err)
	second, err := GenerateSessionID()
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}

func TestIsValidObjectID(t *testing.T) {
	assert.True(t, IsValidObjectID("507f1f77bcf86cd799439011"))
	assert.False(t, IsValidObjectID("not-an-id"))
	assert.False(t, IsValidObjectID(""))
}

func TestCleanFileName(t *testing.T) {
	assert.Equal(t, "router_photo", CleanFileName("router photo"))
	assert.Equal(t, "a_b", CleanFileName("a//b"))
	assert.Equal(t, "plan", CleanFileName("  plan  "))
}

func TestGenerateMediaKey(t *testing.T) {
	key := GenerateMediaKey("banners", "hero image.png")

	assert.True(t, strings.HasPrefix(key, "banners/hero_image_"), "key %q", key)
	assert.True(t, strings.HasSuffix(key, ".png"))

	// Keys must differ across calls for the same input.
	assert.NotEqual(t, key, GenerateMediaKey("banners", "hero image.png"))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2secret", hash)
	assert.True(t, CheckPasswordHash("hunter2secret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
