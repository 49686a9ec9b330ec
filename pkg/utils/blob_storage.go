package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

//go:generate mockgen -source=blob_storage.go -destination=mocks/blob_storage_mock.go -package=mocks

// BlobStorage hands out presigned URLs; the server never proxies bytes.
type BlobStorage interface {
	PresignUpload(ctx context.Context, key string, ttl time.Duration) (string, error)
	PresignDownload(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type S3BlobStorage struct {
	presign *s3.PresignClient
	bucket  string
}

func NewS3BlobStorage(client *s3.Client, bucket string) *S3BlobStorage {
	return &S3BlobStorage{presign: s3.NewPresignClient(client), bucket: bucket}
}

func (s *S3BlobStorage) PresignUpload(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = ttl
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate upload URL: %w", err)
	}
	return req.URL, nil
}

func (s *S3BlobStorage) PresignDownload(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = ttl
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate photo URL: %w", err)
	}
	return req.URL, nil
}
