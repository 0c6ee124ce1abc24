package services

import (
	"testing"

	"fibresite/models"
	"fibresite/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettingsCreatesSingletonWithDefaults(t *testing.T) {
	coll := testutil.NewMemCollection()
	svc := NewSettingsServiceWithCollection(coll)

	settings, err := svc.GetSettings()
	require.NoError(t, err)

	defaults := models.DefaultSettings()
	assert.Equal(t, defaults.FontFamily, settings.FontFamily)
	assert.Equal(t, defaults.PrimaryColor, settings.PrimaryColor)
	assert.Equal(t, defaults.SiteName, settings.SiteName)
	assert.Equal(t, 1, coll.Len())

	// Reads after the first must reuse the same document.
	again, err := svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, 1, coll.Len())
	assert.Equal(t, settings.ID, again.ID)
}

func TestUpdateSettingsPatchesOnlyProvidedFields(t *testing.T) {
	coll := testutil.NewMemCollection()
	svc := NewSettingsServiceWithCollection(coll)

	updated, err := svc.UpdateSettings(&models.SettingsRequest{
		SiteName:     "Savanna Fibre Ltd",
		PrimaryColor: "#112233",
	})
	require.NoError(t, err)

	defaults := models.DefaultSettings()
	assert.Equal(t, "Savanna Fibre Ltd", updated.SiteName)
	assert.Equal(t, "#112233", updated.PrimaryColor)
	assert.Equal(t, defaults.FontFamily, updated.FontFamily)
	assert.Equal(t, defaults.SecondaryColor, updated.SecondaryColor)
	assert.Equal(t, defaults.SiteDescription, updated.SiteDescription)
	assert.Equal(t, 1, coll.Len())
}
