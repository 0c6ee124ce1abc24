package middleware

import (
	"strings"

	"fibresite/models"
	"fibresite/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the cookie carrying the session id.
const SessionCookie = "sid"

// SessionLookup resolves a session id from the cookie to the owning user.
// The concrete implementation lives in services; the indirection keeps the
// gate testable without a database.
type SessionLookup interface {
	ResolveSession(sessionID string) (*models.User, error)
}

// SessionAuth validates the session cookie and stores the authenticated
// user in the request context. API paths get a JSON 401; page paths are
// redirected to the login page.
func SessionAuth(lookup SessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			rejectUnauthenticated(c, "Please log in first")
			return
		}

		user, err := lookup.ResolveSession(sessionID)
		if err != nil {
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			rejectUnauthenticated(c, "Session expired, please log in again")
			return
		}

		utils.SetUserInContext(c, user)
		c.Next()
	}
}

// OptionalSessionAuth populates the user context when a valid session is
// present but never rejects the request.
func OptionalSessionAuth(lookup SessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		if user, err := lookup.ResolveSession(sessionID); err == nil {
			utils.SetUserInContext(c, user)
		}
		c.Next()
	}
}

// RequireAdmin gates endpoints to admin-role users. Must run after
// SessionAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := utils.GetUserFromContext(c)
		if !exists {
			utils.UnauthorizedResponse(c, "Please log in first")
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			utils.ForbiddenResponse(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

func rejectUnauthenticated(c *gin.Context, message string) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		utils.UnauthorizedResponse(c, message)
	} else {
		c.Redirect(302, "/login.html")
	}
	c.Abort()
}
