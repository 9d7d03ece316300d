// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-vault-import/internal/importer"
)

// Source opens an import file by name.
type Source interface {
	Open(ctx context.Context, name string) (importer.FileHandle, error)
}

// ObjectGetter is the part of [s3.Client] used by [S3Source].
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}
