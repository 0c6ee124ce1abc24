package routes

import (
	"net/http"

	"fibresite/middleware"

	"github.com/gin-gonic/gin"
)

// adminPages maps dashboard paths to the static page that serves them. The
// pages themselves are public assets; the session gate is what keeps
// unauthenticated visitors out.
var adminPages = map[string]string{
	"/":            "dashboard.html",
	"/dashboard":   "dashboard.html",
	"/plans":       "plans.html",
	"/shop":        "shop.html",
	"/coverages":   "coverages.html",
	"/users":       "users.html",
	"/banners":     "banners.html",
	"/accessories": "accessories.html",
}

// AdminPageRoutes serves the admin dashboard pages behind session
// authentication. Unauthenticated visitors are redirected to the login page
// instead of getting a JSON error.
func AdminPageRoutes(r *gin.Engine, lookup middleware.SessionLookup) {
	admin := r.Group("/admin")
	admin.Use(middleware.SessionAuth(lookup))
	{
		for path, page := range adminPages {
			admin.GET(path, servePage(page))
		}

		// Legacy link used by older dashboard builds.
		admin.GET("/coverage", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/admin/coverages")
		})
	}
}

func servePage(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File("./public/" + page)
	}
}
