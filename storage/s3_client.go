package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"fibresite/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Client implements Client against any S3-compatible media host.
type S3Client struct {
	client   *s3.S3
	uploader *s3manager.Uploader
	bucket   string
	region   string
	baseURL  string
}

// NewS3Client creates a media host client from configuration.
func NewS3Client(cfg *config.Config) (*S3Client, error) {
	if !cfg.MediaConfigured() {
		return nil, fmt.Errorf("media host is not configured")
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.MediaRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.MediaAccessKey,
			cfg.MediaSecretKey,
			"",
		),
	}

	// Custom endpoint for S3-compatible hosts
	if cfg.MediaEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.MediaEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create media host session: %v", err)
	}

	return &S3Client{
		client:   s3.New(sess),
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.MediaBucket,
		region:   cfg.MediaRegion,
		baseURL:  strings.TrimSuffix(cfg.MediaBaseURL, "/"),
	}, nil
}

// Upload streams an asset to the media host.
func (s *S3Client) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return NewMediaError("UPLOAD_FAILED", err.Error(), key)
	}

	return nil
}

// Delete removes an asset from the media host.
func (s *S3Client) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return NewMediaError("DELETE_FAILED", err.Error(), key)
	}

	return nil
}

// URL returns the public URL for a key.
func (s *S3Client) URL(key string) string {
	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// HealthCheck verifies the bucket is reachable.
func (s *S3Client) HealthCheck() error {
	_, err := s.client.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return NewMediaError("HEALTH_CHECK_FAILED", err.Error(), "")
	}

	return nil
}
