package storage

import (
	"ClipHub/config"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore implements Store on a single MinIO bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore builds a Store from a MinIO client and bucket.
func NewMinioStore(client *minio.Client, bucket string) *MinioStore {
	return &MinioStore{client: client, bucket: bucket}
}

// Put uploads the stream under a fresh locator. MinIO publishes the
// object only after a complete upload, so visibility is atomic.
func (s *MinioStore) Put(ctx context.Context, originalName string, reader io.Reader, size int64, opts PutOptions) (string, error) {
	locator := NewLocator(originalName)
	_, err := s.client.PutObject(ctx, s.bucket, locator, reader, size, minio.PutObjectOptions{
		ContentType: opts.ContentType,
	})
	if err != nil {
		return "", err
	}
	return locator, nil
}

// Get fetches an object and its size from MinIO.
func (s *MinioStore) Get(ctx context.Context, locator string) (io.ReadCloser, ObjectInfo, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, locator, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if isMinioNotFound(err) {
			return nil, ObjectInfo{}, ErrObjectNotFound
		}
		return nil, ObjectInfo{}, err
	}
	info := ObjectInfo{
		Locator:     locator,
		Size:        stat.Size,
		ContentType: stat.ContentType,
	}
	return obj, info, nil
}

// Remove deletes an object from MinIO. MinIO treats removing a
// missing key as success, matching the idempotent delete contract.
func (s *MinioStore) Remove(ctx context.Context, locator string) error {
	return s.client.RemoveObject(ctx, s.bucket, locator, minio.RemoveObjectOptions{})
}

func isMinioNotFound(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey"
	}
	return false
}

// InitMinio initializes the MinIO client and bucket as the default backend.
func InitMinio() {
	client, err := minio.New(fmt.Sprintf("%s:%s", config.AppConfig.MinioHost, config.AppConfig.MinioPort), &minio.Options{
		Creds:  credentials.NewStaticV4(config.AppConfig.MinioUsername, config.AppConfig.MinioPassword, ""),
		Secure: false,
	})
	if err != nil {
		log.Fatalln("minio error:", err)
	}
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, config.AppConfig.BucketName)
	if err != nil {
		log.Fatalln("check bucket fail:", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.AppConfig.BucketName, minio.MakeBucketOptions{}); err != nil {
			log.Fatalln("create bucket fail:", err)
		}
	}
	log.Println("init minio storage success:", config.AppConfig.BucketName)
	Default = NewMinioStore(client, config.AppConfig.BucketName)
}

// InitStorage selects the configured backend.
func InitStorage() {
	switch config.AppConfig.StorageBackend {
	case "minio":
		InitMinio()
	default:
		InitFS()
	}
}
