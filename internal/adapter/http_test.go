// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/utils"
	"github.com/MKhiriev/go-vault-import/models"
)

func newTestClient(t *testing.T, serverURL, token string) ImportClient {
	t.Helper()
	c, err := NewHTTPImportClient(serverURL, token, time.Second, logger.Nop())
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "keeps https", raw: " https://vault.example.com/ ", want: "https://vault.example.com"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPImportClient_InvalidAddress(t *testing.T) {
	_, err := NewHTTPImportClient("", "token", 0, logger.Nop())
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL, "").Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}

func TestImportFile_Success(t *testing.T) {
	const content = "name,client,category,url,login,password,notes\nmail,,,,bob,secret,\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/import", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, utils.Digest([]byte(content)), r.Header.Get(checksumHeader))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, ";", r.FormValue("delimiter"))
		assert.Equal(t, "7", r.FormValue("default_user_id"))
		assert.Equal(t, "3", r.FormValue("default_group_id"))
		assert.Equal(t, "export", r.FormValue("export_passphrase"))
		assert.Empty(t, r.FormValue("master_passphrase"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "accounts.csv", header.Filename)
		assert.Equal(t, "text/csv", header.Header.Get("Content-Type"))
		assert.Equal(t, content, string(body))

		writeJSON(t, w, http.StatusOK, models.ImportResult{ID: "run-1", Format: "csv", Imported: 1})
	}))
	defer srv.Close()

	result, err := newTestClient(t, srv.URL, " tok ").ImportFile(context.Background(), FileUpload{
		Name:             "accounts.csv",
		Body:             strings.NewReader(content),
		ContentType:      "text/csv",
		Delimiter:        ';',
		ExportPassphrase: "export",
		DefaultUserID:    7,
		DefaultGroupID:   3,
	})

	require.NoError(t, err)
	assert.Equal(t, "run-1", result.ID)
	assert.Equal(t, "csv", result.Format)
	assert.Equal(t, 1, result.Imported)
}

func TestImportFile_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"export passphrase required"}`, wantErr: ErrBadRequest, wantMsg: "export passphrase required"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"token is expired"}`, wantErr: ErrUnauthorized},
		{name: "too large", status: http.StatusRequestEntityTooLarge, body: `{"error":"upload too large"}`, wantErr: ErrTooLarge},
		{name: "unsupported", status: http.StatusUnsupportedMediaType, body: `{"error":"unsupported"}`, wantErr: ErrUnsupportedFormat},
		{name: "rejected", status: http.StatusUnprocessableEntity, body: `{"error":"line 1: wrong field count","line":1}`, wantErr: ErrRejected, wantMsg: "line 1"},
		{name: "directory", status: http.StatusBadGateway, body: `{"error":"bind failed"}`, wantErr: ErrBadGateway},
		{name: "unavailable", status: http.StatusServiceUnavailable, body: `{"error":"not configured"}`, wantErr: ErrUnavailable},
		{name: "internal plain text", status: http.StatusInternalServerError, body: "boom", wantErr: ErrInternalServerError, wantMsg: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL, "tok").ImportFile(context.Background(), FileUpload{
				Name: "a.csv",
				Body: strings.NewReader("x"),
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestImportFile_LineIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"line 4: bad quote","line":4}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, "tok").ImportFile(context.Background(), FileUpload{
		Name: "a.csv",
		Body: strings.NewReader("x"),
	})

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusUnprocessableEntity, serverErr.Status)
	assert.Equal(t, 4, serverErr.Line)
}

func TestImportFile_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, "tok").ImportFile(context.Background(), FileUpload{
		Name: "a.csv",
		Body: strings.NewReader("x"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestImportFile_ReadError(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1", "tok")

	_, err := c.ImportFile(context.Background(), FileUpload{Name: "a.csv", Body: failingReader{}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read a.csv")
}

func TestImportDirectory(t *testing.T) {
	tests := []struct {
		name string
		path string
		call func(ImportClient, context.Context, models.DirectoryImportRequest) (models.ImportResult, error)
	}{
		{name: "groups", path: "/api/import/ldap/groups", call: ImportClient.ImportDirectoryGroups},
		{name: "users", path: "/api/import/ldap/users", call: ImportClient.ImportDirectoryUsers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

				var req models.DirectoryImportRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "(objectClass=person)", req.Directory.Filter)
				assert.Equal(t, int64(5), req.Directory.DefaultGroupID)

				writeJSON(t, w, http.StatusOK, models.ImportResult{
					ID:        "run-2",
					Format:    "ldap",
					Imported:  2,
					Directory: &models.DirectoryTally{Seen: 2, Synced: 2},
				})
			}))
			defer srv.Close()

			result, err := tt.call(newTestClient(t, srv.URL, "tok"), context.Background(), models.DirectoryImportRequest{
				Directory: models.DirectoryOptions{Filter: "(objectClass=person)", DefaultGroupID: 5},
			})

			require.NoError(t, err)
			assert.Equal(t, 2, result.Imported)
			require.NotNil(t, result.Directory)
			assert.Equal(t, 2, result.Directory.Synced)
		})
	}
}

func TestImportDirectory_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"directory import is not configured"}`))
	}))
	defer srv.Close()

	result, err := newTestClient(t, srv.URL, "tok").ImportDirectoryUsers(context.Background(), models.DirectoryImportRequest{})

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, result.ID)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}
