// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/mock"
	"github.com/MKhiriev/go-vault-import/internal/service"
	"github.com/MKhiriev/go-vault-import/internal/utils"
)

// ─────────────────────────────────────────────
// Handler fixture
// ─────────────────────────────────────────────

type handlerFixture struct {
	handler *Handler
	imports *mock.MockImportService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

func newHandlerFixture(t *testing.T, settings Settings) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		imports: mock.NewMockImportService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	f.handler = NewHandler(&service.Services{
		AuthService:    f.auth,
		AppInfoService: f.appInfo,
		ImportService:  f.imports,
	}, settings, logger.Nop())
	return f
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

// withUser authenticates r as userID without going through the middleware.
func withUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}

// ─────────────────────────────────────────────
// Multipart uploads
// ─────────────────────────────────────────────

type upload struct {
	filename    string
	contentType string
	content     string
	fields      map[string]string
}

// body encodes u as a multipart form. An empty filename leaves the file
// part out.
func (u upload) body(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range u.fields {
		require.NoError(t, mw.WriteField(name, value))
	}

	if u.filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+u.filename+`"`)
		header.Set("Content-Type", u.contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(u.content))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func (u upload) request(t *testing.T) *http.Request {
	t.Helper()
	body, contentType := u.body(t)
	req := httptest.NewRequest(http.MethodPost, "/api/import", body)
	req.Header.Set("Content-Type", contentType)
	return injectNopLogger(req)
}
