// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-vault-import/internal/importer"
	"github.com/MKhiriev/go-vault-import/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -mock_names=MasterKeyService=MockVaultMasterKeyService

type AuthService interface {
	CreateToken(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MasterKeyService reads and seeds the hash of the vault's master password.
type MasterKeyService interface {
	importer.MasterKeyService

	// EnsureMasterKeyHash stores the hash of passphrase when the vault has
	// none, and checks passphrase against it otherwise.
	EnsureMasterKeyHash(ctx context.Context, passphrase string) error
}
