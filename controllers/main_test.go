package controllers

import (
	"context"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"fibresite/config"
	"fibresite/storage"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		AppName:       "Savanna Fibre",
		MaxImageSize:  10 << 20,
		SessionMaxAge: 24 * time.Hour,
	}
	os.Exit(m.Run())
}

// fakeMediaClient records remote uploads and deletes so tests can assert on
// the exact traffic a handler generates.
type fakeMediaClient struct {
	mu      sync.Mutex
	uploads []string
	deletes []string
}

func (f *fakeMediaClient) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return err
	}
	f.uploads = append(f.uploads, key)
	return nil
}

func (f *fakeMediaClient) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, key)
	return nil
}

func (f *fakeMediaClient) URL(key string) string {
	return "https://media.example.com/" + key
}

func (f *fakeMediaClient) HealthCheck() error {
	return nil
}

// useFakeMedia installs a recording media client for the duration of a test.
func useFakeMedia(t *testing.T) *fakeMediaClient {
	t.Helper()
	fake := &fakeMediaClient{}
	storage.SetClient(fake)
	t.Cleanup(func() { storage.SetClient(nil) })
	return fake
}
