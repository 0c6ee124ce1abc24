package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"fibresite/models"
	"fibresite/services"
	"fibresite/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newBannerRouter(coll *testutil.MemCollection) *gin.Engine {
	ctrl := NewBannerControllerWithService(services.NewBannerServiceWithCollection(coll))

	r := gin.New()
	r.GET("/api/banners", ctrl.GetBanners)
	r.GET("/api/banners/active", ctrl.GetActiveBanners)
	r.POST("/api/banners", ctrl.CreateBanner)
	r.PATCH("/api/banners/:id/toggle", ctrl.ToggleBanner)
	r.DELETE("/api/banners/:id", ctrl.DeleteBanner)
	return r
}

func seedBanner(t *testing.T, coll *testutil.MemCollection, active bool) models.Banner {
	t.Helper()
	now := time.Now()
	banner := models.Banner{
		ID:          primitive.NewObjectID(),
		Title:       "Spring promo",
		Subtitle:    "Fast fibre for your home",
		Button1Text: "Get Connected",
		Button1Link: "/contact",
		Button2Text: "View Plans",
		Button2Link: "/plans",
		ImageURL:    "https://media.example.com/banners/promo.png",
		MediaID:     "banners/promo.png",
		BgColor:     models.DefaultBannerColor,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, coll.Seed(banner))
	return banner
}

func decodeData(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	require.True(t, envelope.Success)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	return data
}

func TestToggleBannerEndpointFlipsVisibility(t *testing.T) {
	coll := testutil.NewMemCollection()
	banner := seedBanner(t, coll, true)
	r := newBannerRouter(coll)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/banners/"+banner.ID.Hex()+"/toggle", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w.Body)
	assert.Equal(t, false, data["isActive"])
	assert.Equal(t, "Spring promo", data["title"])
	assert.Equal(t, "banners/promo.png", data["mediaId"])

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/banners/"+banner.ID.Hex()+"/toggle", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w.Body)
	assert.Equal(t, true, data["isActive"])
}

func TestToggleBannerEndpointUnknownID(t *testing.T) {
	r := newBannerRouter(testutil.NewMemCollection())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/banners/"+primitive.NewObjectID().Hex()+"/toggle", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/banners/not-an-id/toggle", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBannerRemovesRemoteImageExactlyOnce(t *testing.T) {
	fake := useFakeMedia(t)
	coll := testutil.NewMemCollection()
	banner := seedBanner(t, coll, true)
	r := newBannerRouter(coll)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/banners/"+banner.ID.Hex(), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, coll.Len())
	assert.Equal(t, []string{"banners/promo.png"}, fake.deletes)
}

func TestCreateBannerMultipartUploadsImage(t *testing.T) {
	fake := useFakeMedia(t)
	coll := testutil.NewMemCollection()
	r := newBannerRouter(coll)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	fields := map[string]string{
		"title":       "New banner",
		"subtitle":    "Subtitle",
		"button1Text": "Go",
		"button1Link": "/go",
		"button2Text": "More",
		"button2Link": "/more",
		"isActive":    "true",
	}
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="promo.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/banners", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, fake.uploads, 1)
	assert.Contains(t, fake.uploads[0], "banners/promo_")

	data := decodeData(t, w.Body)
	assert.Equal(t, "New banner", data["title"])
	assert.Equal(t, fake.uploads[0], data["mediaId"])
	assert.Equal(t, 1, coll.Len())
}

func TestCreateBannerJSONRejectsMissingFields(t *testing.T) {
	r := newBannerRouter(testutil.NewMemCollection())

	body := bytes.NewBufferString(`{"title":"Only a title"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/banners", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
