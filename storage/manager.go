package storage

import (
	"fmt"
	"log"

	"fibresite/config"
)

var defaultClient Client

// Init builds the media host client from configuration. Missing
// credentials are not fatal; upload endpoints will report the problem
// per request.
func Init(cfg *config.Config) error {
	if !cfg.MediaConfigured() {
		log.Println("Media host not configured, image uploads disabled")
		return nil
	}

	client, err := NewS3Client(cfg)
	if err != nil {
		return err
	}

	defaultClient = client
	log.Printf("Media host initialized: bucket=%s", cfg.MediaBucket)
	return nil
}

// SetClient overrides the default media client. Used by tests.
func SetClient(c Client) {
	defaultClient = c
}

// GetClient returns the configured media client.
func GetClient() (Client, error) {
	if defaultClient == nil {
		return nil, fmt.Errorf("media host not configured")
	}
	return defaultClient, nil
}
