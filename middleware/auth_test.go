package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fibresite/models"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func newTestRouter(lookup SessionLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := func(c *gin.Context) {
		user, _ := utils.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	}
	r.GET("/api/plans", SessionAuth(lookup), handler)
	r.GET("/dashboard", SessionAuth(lookup), handler)
	r.GET("/api/users", SessionAuth(lookup), RequireAdmin(), handler)
	return r
}

func adminUser() *models.User {
	return &models.User{
		ID:    primitive.NewObjectID(),
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	}
}

func TestSessionAuthMissingCookieOnAPIPath(t *testing.T) {
	r := newTestRouter(&stubLookup{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestSessionAuthMissingCookieOnPagePath(t *testing.T) {
	r := newTestRouter(&stubLookup{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login.html", w.Header().Get("Location"))
}

func TestSessionAuthInvalidSessionClearsCookie(t *testing.T) {
	r := newTestRouter(&stubLookup{err: errors.New("session expired")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestSessionAuthValidSessionSetsUser(t *testing.T) {
	r := newTestRouter(&stubLookup{user: adminUser()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "live"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}

func TestRequireAdminRejectsRegularUser(t *testing.T) {
	user := adminUser()
	user.Role = models.RoleUser
	r := newTestRouter(&stubLookup{user: user})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "live"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	r := newTestRouter(&stubLookup{user: adminUser()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "live"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalSessionAuthNeverRejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/banners", OptionalSessionAuth(&stubLookup{err: errors.New("nope")}), func(c *gin.Context) {
		_, exists := utils.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": exists})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/banners", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}
