package storage

import (
	"context"
	"mime/multipart"

	"fibresite/models"
	"fibresite/utils"

	"github.com/sirupsen/logrus"
)

// UploadImage validates and streams a multipart image to the media host,
// returning the public URL and identifier of the stored asset.
func UploadImage(ctx context.Context, client Client, file *multipart.FileHeader, folder string, maxSize int64) (*models.MediaAsset, error) {
	if err := utils.ValidateImageUpload(file, maxSize); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	key := utils.GenerateMediaKey(folder, file.Filename)
	if err := client.Upload(ctx, key, src, file.Size, utils.ImageContentType(file)); err != nil {
		return nil, err
	}

	return &models.MediaAsset{
		URL: client.URL(key),
		ID:  key,
	}, nil
}

// DeleteQuietly removes a remote asset best-effort. Replacement and entity
// deletion never fail because the old asset could not be removed; the
// failure is only logged.
func DeleteQuietly(ctx context.Context, client Client, key string) {
	if client == nil || key == "" {
		return
	}
	if err := client.Delete(ctx, key); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("failed to delete remote media asset")
	}
}
