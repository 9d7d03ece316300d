// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-import/internal/directory"
	"github.com/MKhiriev/go-vault-import/internal/importer"
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/service"
	"github.com/MKhiriev/go-vault-import/internal/store"
	"github.com/MKhiriev/go-vault-import/internal/utils"
)

// errorStatusMap must not hold two sentinels with different statuses that
// can wrap one another: lookup order is random.
var errorStatusMap = map[error]int{
	ErrMissingFile:      http.StatusBadRequest,
	ErrInvalidForm:      http.StatusBadRequest,
	ErrInvalidOption:    http.StatusBadRequest,
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrUploadTooLarge:   http.StatusRequestEntityTooLarge,
	ErrChecksumMismatch: http.StatusBadRequest,

	importer.ErrUnsupportedFormat:        http.StatusUnsupportedMediaType,
	importer.ErrImport:                   http.StatusUnprocessableEntity,
	importer.ErrInvalidFormat:            http.StatusUnprocessableEntity,
	importer.ErrOldVersion:               http.StatusUnprocessableEntity,
	importer.ErrMissingPassphrase:        http.StatusBadRequest,
	importer.ErrWrongPassphrase:          http.StatusBadRequest,
	importer.ErrDirectoryNotConfigured:   http.StatusServiceUnavailable,
	importer.ErrInvalidDirectoryDefaults: http.StatusUnprocessableEntity,

	directory.ErrNotConfigured: http.StatusServiceUnavailable,
	directory.ErrInvalidFilter: http.StatusBadRequest,
	directory.ErrConnect:       http.StatusBadGateway,
	directory.ErrBind:          http.StatusBadGateway,
	directory.ErrSearch:        http.StatusBadGateway,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNoMasterPassword:        http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
	Line  int    `json:"line,omitempty"`
}

// writeError answers with the status mapped from err. Server-side failures
// never leak their message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("import request failed")
		if status == http.StatusInternalServerError {
			utils.WriteJSON(w, errorResponse{Error: http.StatusText(status)}, status)
			return
		}
	} else {
		log.Warn().Err(err).Int("status", status).Msg("import request rejected")
	}

	resp := errorResponse{Error: err.Error()}
	var lineErr *importer.LineError
	if errors.As(err, &lineErr) {
		resp.Line = lineErr.Line
	}
	utils.WriteJSON(w, resp, status)
}
