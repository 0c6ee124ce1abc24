package utils

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"
)

// ErrInvalidImage marks an upload rejected before reaching the media host,
// so handlers can answer 400 instead of 500.
var ErrInvalidImage = errors.New("invalid image upload")

// ValidateImageUpload checks the declared type and size of an uploaded
// file. SVG is allowed alongside raster image types.
func ValidateImageUpload(file *multipart.FileHeader, maxSize int64) error {
	if file.Size > maxSize {
		return fmt.Errorf("%w: file size %d exceeds maximum allowed size %d", ErrInvalidImage, file.Size, maxSize)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(file.Filename)))
	}

	if !strings.HasPrefix(contentType, "image/") && contentType != "image/svg+xml" {
		return fmt.Errorf("%w: only image files and SVG are allowed, got %s", ErrInvalidImage, contentType)
	}

	return nil
}

// ImageContentType resolves the content type sent to the media host.
func ImageContentType(file *multipart.FileHeader) string {
	if ct := file.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(file.Filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// GenerateMediaKey builds the remote object key for an upload, namespaced
// by the owning entity's folder tag.
func GenerateMediaKey(folder, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := CleanFileName(strings.TrimSuffix(originalName, ext))
	if name == "" {
		name = "upload"
	}
	return fmt.Sprintf("%s/%s_%d_%s%s", folder, name, time.Now().Unix(), GenerateRandomString(8), ext)
}
