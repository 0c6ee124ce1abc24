package controllers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"fibresite/config"
	"fibresite/models"
	"fibresite/storage"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

// Admin forms post multipart when an image rides along and plain JSON
// otherwise, so every entity controller binds both shapes.

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

func formInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.PostForm(name)))
	if err != nil {
		return 0
	}
	return v
}

func formFloat(c *gin.Context, name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm(name)), 64)
	if err != nil {
		return 0
	}
	return v
}

func formBool(c *gin.Context, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.PostForm(name))) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

// formStrings reads a repeated field or a JSON-encoded array, the two ways
// the admin dashboard submits list fields in multipart bodies.
func formStrings(c *gin.Context, name string) []string {
	values := c.PostFormArray(name)
	if len(values) > 1 {
		return values
	}
	if len(values) == 1 {
		raw := strings.TrimSpace(values[0])
		if strings.HasPrefix(raw, "[") {
			var parsed []string
			if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
				return parsed
			}
		}
		if raw != "" {
			return []string{raw}
		}
	}
	return nil
}

// formJSON decodes a JSON-encoded object field from a multipart body.
// Absent or empty fields leave dest untouched.
func formJSON(c *gin.Context, name string, dest interface{}) error {
	raw := strings.TrimSpace(c.PostForm(name))
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dest)
}

// mediaFromRequest uploads the named multipart file to the media host.
// A request without that file yields (nil, nil).
func mediaFromRequest(c *gin.Context, field, folder string) (*models.MediaAsset, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	client, err := storage.GetClient()
	if err != nil {
		return nil, err
	}

	return storage.UploadImage(c.Request.Context(), client, file, folder, config.AppConfig.MaxImageSize)
}

// respondMediaError maps an upload failure onto the response taxonomy:
// rejected files are the client's fault, everything else is upstream.
func respondMediaError(c *gin.Context, err error) {
	if errors.Is(err, utils.ErrInvalidImage) {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.InternalServerErrorResponse(c, "Failed to upload image")
}

func assetID(asset *models.MediaAsset) string {
	if asset == nil {
		return ""
	}
	return asset.ID
}

// discardMedia best-effort deletes a remote asset whose owning document is
// gone or no longer references it.
func discardMedia(c *gin.Context, mediaID string) {
	if mediaID == "" {
		return
	}
	client, err := storage.GetClient()
	if err != nil {
		return
	}
	storage.DeleteQuietly(c.Request.Context(), client, mediaID)
}
