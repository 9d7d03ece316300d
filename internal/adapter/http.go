// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/utils"
	"github.com/MKhiriev/go-vault-import/models"
)

// checksumHeader carries the SHA-256 of the uploaded file.
const checksumHeader = "X-Content-SHA256"

const defaultTimeout = 60 * time.Second

type httpImportClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPImportClient builds an [ImportClient] for the server at address.
// A missing scheme defaults to http. token is sent as a bearer token on
// every import request.
func NewHTTPImportClient(address, token string, timeout time.Duration, logger *logger.Logger) (ImportClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	if token = strings.TrimSpace(token); token != "" {
		client.SetAuthToken(token)
	}

	return &httpImportClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpImportClient) Version(ctx context.Context) (string, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// ImportFile reads the whole body to sign it with [checksumHeader] before
// sending it as multipart/form-data.
func (c *httpImportClient) ImportFile(ctx context.Context, upload FileUpload) (models.ImportResult, error) {
	var result models.ImportResult

	data, err := io.ReadAll(upload.Body)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", upload.Name, err)
	}

	c.logger.Debug().Str("func", "*httpImportClient.ImportFile").
		Str("file", upload.Name).
		Int("size", len(data)).
		Msg("uploading import file")

	req := c.client.R().
		SetContext(ctx).
		SetHeader(checksumHeader, utils.Digest(data)).
		SetMultipartFormData(uploadFields(upload)).
		SetResult(&result)
	if upload.ContentType != "" {
		req.SetMultipartField("file", upload.Name, upload.ContentType, bytes.NewReader(data))
	} else {
		req.SetFileReader("file", upload.Name, bytes.NewReader(data))
	}

	resp, err := req.Post("/api/import")
	if err != nil {
		return result, fmt.Errorf("import request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ImportResult{}, err
	}

	return result, nil
}

func (c *httpImportClient) ImportDirectoryGroups(ctx context.Context, req models.DirectoryImportRequest) (models.ImportResult, error) {
	return c.importDirectory(ctx, "/api/import/ldap/groups", req)
}

func (c *httpImportClient) ImportDirectoryUsers(ctx context.Context, req models.DirectoryImportRequest) (models.ImportResult, error) {
	return c.importDirectory(ctx, "/api/import/ldap/users", req)
}

func (c *httpImportClient) importDirectory(ctx context.Context, path string, req models.DirectoryImportRequest) (models.ImportResult, error) {
	var result models.ImportResult

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post(path)
	if err != nil {
		return result, fmt.Errorf("directory import request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ImportResult{}, err
	}

	return result, nil
}

func uploadFields(upload FileUpload) map[string]string {
	fields := make(map[string]string)
	if upload.Delimiter != 0 {
		fields["delimiter"] = string(upload.Delimiter)
	}
	if upload.ExportPassphrase != "" {
		fields["export_passphrase"] = upload.ExportPassphrase
	}
	if upload.MasterPassphrase != "" {
		fields["master_passphrase"] = upload.MasterPassphrase
	}
	if upload.DefaultUserID != 0 {
		fields["default_user_id"] = strconv.FormatInt(upload.DefaultUserID, 10)
	}
	if upload.DefaultGroupID != 0 {
		fields["default_group_id"] = strconv.FormatInt(upload.DefaultGroupID, 10)
	}
	return fields
}
