package utils

import (
	"testing"

	"fibresite/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructAcceptsValidPlan(t *testing.T) {
	req := models.PlanRequest{
		Name:             "Jamii 10Mbps",
		Type:             "residential",
		Speed:            10,
		Price:            2000,
		SupportedDevices: 5,
		Features:         []string{"Unlimited data"},
	}

	assert.NoError(t, ValidateStruct(&req))
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	req := models.PlanRequest{
		Name:     "Jamii 10Mbps",
		Speed:    10,
		Features: []string{"Unlimited data"},
	}

	err := ValidateStruct(&req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supportedDevices")
}

func TestValidateStructRejectsUnknownPlanType(t *testing.T) {
	req := models.PlanRequest{
		Name:             "Jamii 10Mbps",
		Type:             "enterprise",
		Speed:            10,
		SupportedDevices: 5,
		Features:         []string{"Unlimited data"},
	}

	err := ValidateStruct(&req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestValidateStructRejectsBadCoverageStatus(t *testing.T) {
	req := models.CoverageAreaRequest{
		Area:   "Nairobi West",
		City:   "Nairobi",
		Status: "active",
	}

	err := ValidateStruct(&req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestValidateStructRejectsBadHexColor(t *testing.T) {
	req := models.BannerRequest{
		Title:       "Fast fibre",
		Subtitle:    "For every home",
		Button1Text: "Sign up",
		Button1Link: "/signup.html",
		Button2Text: "Coverage",
		Button2Link: "/coverage.html",
		BgColor:     "orange",
	}

	err := ValidateStruct(&req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hex color")
}

func TestValidateStructAllowsEmptyOptionalSettings(t *testing.T) {
	// A partial settings patch with no fields set is valid.
	assert.NoError(t, ValidateStruct(&models.SettingsRequest{}))
}

func TestValidateStructRejectsInvalidEmail(t *testing.T) {
	req := models.LoginRequest{Email: "not-an-email", Password: "secret"}

	err := ValidateStruct(&req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid email")
}

func TestValidateStructContactNeedsNameAndMessage(t *testing.T) {
	err := ValidateStruct(&models.ContactRequest{Subject: "General"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "message")
}
