package middleware

import (
	"time"

	appconfig "fibresite/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware configures CORS for the application
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowMethods: []string{
			"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"Accept",
			"Accept-Encoding",
			"Accept-Language",
			"Connection",
			"Host",
			"Referer",
			"User-Agent",
			"X-Requested-With",
			"X-CSRF-Token",
		},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"Content-Disposition",
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if gin.Mode() == gin.DebugMode {
		// In development, allow all origins
		config.AllowAllOrigins = true
		config.AllowWildcard = true
	} else {
		// In production, use the configured origin list
		if appconfig.AppConfig != nil && len(appconfig.AppConfig.CORSAllowedOrigins) > 0 {
			config.AllowOrigins = appconfig.AppConfig.CORSAllowedOrigins
		} else {
			config.AllowOrigins = []string{"http://localhost:8080"}
		}
		config.AllowWildcard = false
	}

	return cors.New(config)
}
