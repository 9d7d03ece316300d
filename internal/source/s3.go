// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-vault-import/internal/config"
	"github.com/MKhiriev/go-vault-import/internal/importer"
	"github.com/MKhiriev/go-vault-import/internal/logger"
)

// NewS3Client builds an S3 client from cfg. Static credentials are used
// when an access key is set, the default AWS chain otherwise. A custom
// endpoint switches to path-style addressing for MinIO-like servers.
func NewS3Client(ctx context.Context, cfg config.S3) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// S3Source reads import files from one bucket, keyed by object key.
type S3Source struct {
	client  ObjectGetter
	bucket  string
	maxSize int64

	logger *logger.Logger
}

func NewS3Source(client ObjectGetter, bucket string, maxSize int64, logger *logger.Logger) *S3Source {
	return &S3Source{client: client, bucket: bucket, maxSize: maxSize, logger: logger}
}

func (s *S3Source) Open(ctx context.Context, key string) (importer.FileHandle, error) {
	log := logger.FromContext(ctx)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return importer.FileHandle{}, fmt.Errorf("%w: s3://%s/%s", ErrFileNotFound, s.bucket, key)
		}
		log.Err(err).Str("func", "S3Source.Open").Str("bucket", s.bucket).Str("key", key).Msg("get object failed")
		return importer.FileHandle{}, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	defer out.Body.Close()

	if out.ContentLength != nil && s.maxSize > 0 && *out.ContentLength > s.maxSize {
		return importer.FileHandle{}, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, s.maxSize)
	}

	data, err := readAll(out.Body, s.maxSize)
	if err != nil {
		log.Err(err).Str("func", "S3Source.Open").Str("key", key).Msg("reading object failed")
		return importer.FileHandle{}, err
	}

	ct := aws.ToString(out.ContentType)
	if ct == "" || ct == "binary/octet-stream" || ct == "application/octet-stream" {
		ct = contentType(key, data)
	}

	return importer.FileHandle{
		Name:        key,
		ContentType: ct,
		Body:        bytes.NewReader(data),
	}, nil
}
