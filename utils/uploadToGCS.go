package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStorage keeps objects in one Google Cloud Storage bucket.
type GCSStorage struct {
	client *storage.Client
	bucket string
}

// NewGCSStorage prefers ADC (service account / GOOGLE_APPLICATION_CREDENTIALS);
// credentialsJSON overrides it, e.g. locally.
func NewGCSStorage(ctx context.Context, bucket string, credentialsJSON string) (*GCSStorage, error) {
	if bucket == "" {
		return nil, errors.New("GCS_BUCKET is required")
	}
	var opts []option.ClientOption
	if strings.TrimSpace(credentialsJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := client.Bucket(bucket).Attrs(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("gcs bucket %q not found or not accessible: %v", bucket, err)
	}
	return &GCSStorage{client: client, bucket: bucket}, nil
}

func (s *GCSStorage) Put(ctx context.Context, folder string, name string, data []byte, contentType string) error {
	if !ValidObjectName(name) {
		return ErrObjectNotFound
	}
	wc := s.client.Bucket(s.bucket).Object(objectKey(folder, name)).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return fmt.Errorf("failed to upload file to Google Cloud Storage: %v", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %v", err)
	}
	return nil
}

func (s *GCSStorage) Get(ctx context.Context, folder string, name string) (io.ReadCloser, error) {
	if !ValidObjectName(name) {
		return nil, ErrObjectNotFound
	}
	rc, err := s.client.Bucket(s.bucket).Object(objectKey(folder, name)).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, ErrObjectNotFound
	}
	return rc, err
}

func (s *GCSStorage) Close() error {
	return s.client.Close()
}
