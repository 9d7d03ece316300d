// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/utils"
)

// checksumHeader carries the hex SHA-256 digest of the request body.
const checksumHeader = "X-Content-SHA256"

// withChecksum rejects a request whose body does not match the digest in
// [checksumHeader]. Requests without the header pass unchecked.
func (h *Handler) withChecksum(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := strings.ToLower(strings.TrimSpace(r.Header.Get(checksumHeader)))
		if want == "" || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.settings.MaxUploadSize))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, r, fmt.Errorf("%w: limit is %d bytes", ErrUploadTooLarge, tooLarge.Limit))
				return
			}
			log.Err(err).Str("func", "*Handler.withChecksum").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		got := utils.Digest(body)
		if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
			log.Error().Str("func", "*Handler.withChecksum").
				Str("checksum from request", want).
				Str("body checksum", got).
				Msg("checksums are not equal")
			writeError(w, r, ErrChecksumMismatch)
			return
		}

		next.ServeHTTP(w, r)
	})
}
