// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/service"
)

// defaultMaxUploadSize applies when Settings.MaxUploadSize is zero.
const defaultMaxUploadSize int64 = 32 << 20

// Settings tune request handling.
type Settings struct {
	// MaxUploadSize limits the request body of a file import in bytes.
	MaxUploadSize int64

	// Delimiter is the CSV delimiter used when a request names none.
	Delimiter rune
}

type Handler struct {
	services *service.Services
	settings Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	if settings.MaxUploadSize <= 0 {
		settings.MaxUploadSize = defaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings,
		logger:   logger,
	}
}
