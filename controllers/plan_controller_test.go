package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func newPlanRouter(coll *testutil.MemCollection) *gin.Engine {
	ctrl := NewPlanControllerWithService(services.NewPlanServiceWithCollection(coll))

	r := gin.New()
	r.GET("/api/plans", ctrl.GetPlans)
	r.GET("/api/plans/:id", ctrl.GetPlan)
	r.POST("/api/plans", ctrl.CreatePlan)
	r.DELETE("/api/plans/:id", ctrl.DeletePlan)
	return r
}

func seedPlan(t *testing.T, coll *testutil.MemCollection, name string, position int) models.Plan {
	t.Helper()
	now := time.Now()
	plan := models.Plan{
		ID:               primitive.NewObjectID(),
		Name:             name,
		Type:             models.PlanTypeResidential,
		Speed:            20,
		Price:            2500,
		SupportedDevices: 5,
		Features:         []string{"Unlimited data"},
		Position:         position,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, coll.Seed(plan))
	return plan
}

func TestCreatePlanJSONReturnsCreated(t *testing.T) {
	coll := testutil.NewMemCollection()
	r := newPlanRouter(coll)

	body := bytes.NewBufferString(`{
		"name": "Jumbo",
		"type": "business",
		"speed": 40,
		"price": 4100,
		"supportedDevices": 13,
		"features": ["Unlimited data", "Free installation"],
		"isPopular": true,
		"position": 2
	}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plans", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w.Body)
	assert.Equal(t, "Jumbo", data["name"])
	assert.Equal(t, "business", data["type"])
	assert.Equal(t, float64(40), data["speed"])
	assert.NotContains(t, data, "imageUrl", "no image submitted, none reported")
	assert.Equal(t, 1, coll.Len())

	// The created plan is immediately retrievable.
	id, ok := data["id"].(string)
	require.True(t, ok)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/plans/"+id, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	fetched := decodeData(t, w.Body)
	assert.Equal(t, "Jumbo", fetched["name"])
}

func TestCreatePlanRejectsInvalidSpeed(t *testing.T) {
	r := newPlanRouter(testutil.NewMemCollection())

	body := bytes.NewBufferString(`{
		"name": "Broken",
		"speed": 0,
		"supportedDevices": 5,
		"features": ["Unlimited data"]
	}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plans", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPlansListedByPosition(t *testing.T) {
	coll := testutil.NewMemCollection()
	seedPlan(t, coll, "Premium", 3)
	seedPlan(t, coll, "Basic", 1)
	seedPlan(t, coll, "Standard", 2)
	r := newPlanRouter(coll)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Success bool          `json:"success"`
		Data    []models.Plan `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	require.Len(t, envelope.Data, 3)

	assert.Equal(t, "Basic", envelope.Data[0].Name)
	assert.Equal(t, "Standard", envelope.Data[1].Name)
	assert.Equal(t, "Premium", envelope.Data[2].Name)
}

func TestDeletePlanRemovesRemoteImageExactlyOnce(t *testing.T) {
	fake := useFakeMedia(t)
	coll := testutil.NewMemCollection()
	now := time.Now()
	plan := models.Plan{
		ID:               primitive.NewObjectID(),
		Name:             "Basic",
		Type:             models.PlanTypeResidential,
		Speed:            20,
		Price:            2500,
		SupportedDevices: 5,
		Features:         []string{"Unlimited data"},
		MediaID:          "plans/basic.png",
		Position:         1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, coll.Seed(plan))
	r := newPlanRouter(coll)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/plans/"+plan.ID.Hex(), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, coll.Len())
	assert.Equal(t, []string{"plans/basic.png"}, fake.deletes)
}
