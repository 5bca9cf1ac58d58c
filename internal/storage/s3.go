package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Vrun1506/foto-AI/internal/config"
)

// S3Store implements ObjectStore against an S3-compatible endpoint.
// OCI Object Storage exposes one per namespace
// (<namespace>.compat.objectstorage.<region>.oraclecloud.com).
type S3Store struct {
	client *minio.Client
	bucket string
}

var _ ObjectStore = (*S3Store)(nil)

// NewS3 connects to the configured compatibility endpoint.
func NewS3(cfg *config.Config) (*S3Store, error) {
	if err := cfg.ValidateStorage(); err != nil {
		return nil, err
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: true,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}
	return &S3Store{client: client, bucket: cfg.BucketName}, nil
}

// Bucket returns the bucket this store operates on.
func (s *S3Store) Bucket() string {
	return s.bucket
}

func (s *S3Store) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", name, err)
	}
	return nil
}

func (s *S3Store) Get(ctx context.Context, name string) ([]byte, ObjectInfo, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, mapError(name, err)
	}
	defer obj.Close()

	// GetObject is lazy; Stat surfaces NoSuchKey before any read.
	stat, err := obj.Stat()
	if err != nil {
		return nil, ObjectInfo{}, mapError(name, err)
	}
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, ObjectInfo{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, infoFromStat(stat), nil
}

func (s *S3Store) Head(ctx context.Context, name string) (ObjectInfo, error) {
	stat, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, mapError(name, err)
	}
	return infoFromStat(stat), nil
}

func (s *S3Store) List(ctx context.Context, prefix string, limit int) ([]ObjectInfo, error) {
	infos := []ObjectInfo{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		infos = append(infos, ObjectInfo{
			Name:         obj.Key,
			Size:         obj.Size,
			ContentType:  obj.ContentType,
			ETag:         obj.ETag,
			LastModified: obj.LastModified,
		})
		if limit > 0 && len(infos) >= limit {
			break
		}
	}
	return infos, nil
}

func (s *S3Store) Delete(ctx context.Context, name string) error {
	// S3 deletes are idempotent; probe first so absent names surface as
	// ErrNotFound the way the facade expects.
	if _, err := s.Head(ctx, name); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

func infoFromStat(stat minio.ObjectInfo) ObjectInfo {
	return ObjectInfo{
		Name:         stat.Key,
		Size:         stat.Size,
		ContentType:  stat.ContentType,
		ETag:         stat.ETag,
		LastModified: stat.LastModified,
	}
}

func mapError(name string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return fmt.Errorf("object storage error for %s: %w", name, err)
}
