package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordNeverSerialized(t *testing.T) {
	user := User{Email: "admin@example.com", Password: "$2a$10$hash", Role: RoleAdmin}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "$2a$10$hash")
	assert.NotContains(t, string(data), "password")
}

func TestSessionExpired(t *testing.T) {
	live := Session{ExpiresAt: time.Now().Add(time.Hour)}
	stale := Session{ExpiresAt: time.Now().Add(-time.Minute)}

	assert.False(t, live.Expired())
	assert.True(t, stale.Expired())
}

func TestDefaultOpeningHoursCoverBusinessWeek(t *testing.T) {
	hours := DefaultOpeningHours()

	for _, day := range []OpeningHour{
		hours.Monday, hours.Tuesday, hours.Wednesday,
		hours.Thursday, hours.Friday, hours.Saturday,
	} {
		assert.Equal(t, "09:00", day.Open)
		assert.Equal(t, "17:00", day.Close)
	}
}

func TestDefaultSettingsKey(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, SiteSettingsKey, settings.Key)
	assert.Equal(t, DefaultBannerColor, settings.PrimaryColor)
}

func TestDefaultAboutHasFeatureBoxes(t *testing.T) {
	about := DefaultAbout()

	assert.Equal(t, AboutKey, about.Key)
	assert.NotEmpty(t, about.FeatureBoxes)
	for _, box := range about.FeatureBoxes {
		assert.NotEmpty(t, box.Icon)
		assert.NotEmpty(t, box.Title)
	}
}
