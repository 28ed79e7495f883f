/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const csvContentType = "text/csv; charset=utf-8"

// ArchiveConfig holds the MinIO connection settings.
type ArchiveConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// objectStore is the part of *minio.Client the archive uses.
type objectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
		opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Archive stores exported reports in an S3 compatible bucket.
type Archive struct {
	client objectStore
	bucket string
}

// NewArchive connects to MinIO and makes sure the bucket exists.
func NewArchive(ctx context.Context, cfg ArchiveConfig) (*Archive, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, ErrArchiveNotConfigured
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return newArchive(ctx, client, cfg.Bucket, cfg.Region)
}

func newArchive(ctx context.Context, client objectStore, bucket, region string) (*Archive, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", bucket, err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", bucket, err)
		}

		logger.Info("Created report bucket", "bucket", bucket)
	}

	return &Archive{client: client, bucket: bucket}, nil
}

// Upload stores a CSV report under key and returns its bucket/key location.
func (a *Archive) Upload(ctx context.Context, key string, report []byte) (string, error) {
	if len(report) == 0 {
		return "", ErrEmptyReport
	}

	info, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(report), int64(len(report)),
		minio.PutObjectOptions{ContentType: csvContentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload %q: %w", key, err)
	}

	logger.Info("Archived report", "bucket", a.bucket, "key", key, "size", info.Size)

	return a.bucket + "/" + key, nil
}
