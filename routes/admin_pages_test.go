package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fibresite/middleware"
	"fibresite/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubLookup struct {
	user *models.User
	err  error
}

func (s *stubLookup) ResolveSession(sessionID string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func newAdminPageRouter(lookup middleware.SessionLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	AdminPageRoutes(r, lookup)
	return r
}

func TestAdminPagesRedirectAnonymousToLogin(t *testing.T) {
	r := newAdminPageRouter(&stubLookup{err: errors.New("no session")})

	for _, path := range []string{"/admin/", "/admin/dashboard", "/admin/plans", "/admin/banners"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login.html", w.Header().Get("Location"), path)
	}
}

func TestAdminPagesStaleSessionRedirectsToLogin(t *testing.T) {
	r := newAdminPageRouter(&stubLookup{err: errors.New("session expired")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "stale"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login.html", w.Header().Get("Location"))
}

func TestAdminCoverageAliasRedirectsWhenAuthenticated(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "admin@example.com", Role: models.RoleAdmin}
	r := newAdminPageRouter(&stubLookup{user: user})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/coverage", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "live"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/coverages", w.Header().Get("Location"))
}
