// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/MKhiriev/go-vault-import/internal/importer"
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/utils"
	"github.com/MKhiriev/go-vault-import/models"
)

// multipartMemory is the part of an upload kept in memory; the rest spills
// to temporary files.
const multipartMemory = 8 << 20

// Form fields of POST /api/import.
const (
	formFile             = "file"
	formDelimiter        = "delimiter"
	formExportPassphrase = "export_passphrase"
	formMasterPassphrase = "master_passphrase"
	formDefaultUserID    = "default_user_id"
	formDefaultGroupID   = "default_group_id"
)

func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.settings.MaxUploadSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, fmt.Errorf("%w: limit is %d bytes", ErrUploadTooLarge, tooLarge.Limit))
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(formFile)
	if err != nil {
		writeError(w, r, ErrMissingFile)
		return
	}
	defer file.Close()

	opts, err := h.fileOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("func", "*Handler.importFile").
		Str("file", header.Filename).
		Int64("size", header.Size).
		Msg("import file received")

	result, err := h.services.ImportService.ImportFile(r.Context(), importer.FileHandle{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) importDirectoryGroups(w http.ResponseWriter, r *http.Request) {
	opts, err := h.directoryOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ImportService.ImportDirectoryGroups(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) importDirectoryUsers(w http.ResponseWriter, r *http.Request) {
	opts, err := h.directoryOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ImportService.ImportDirectoryUsers(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// fileOptions reads the import options sent next to the uploaded file.
func (h *Handler) fileOptions(r *http.Request) (models.ImportOptions, error) {
	opts := models.ImportOptions{
		Delimiter:        h.settings.Delimiter,
		ExportPassphrase: r.FormValue(formExportPassphrase),
		MasterPassphrase: r.FormValue(formMasterPassphrase),
	}

	if d := r.FormValue(formDelimiter); d != "" {
		delimiter, size := utf8.DecodeRuneInString(d)
		if size != len(d) || delimiter == utf8.RuneError {
			return opts, fmt.Errorf("%w: %s must be a single character", ErrInvalidOption, formDelimiter)
		}
		opts.Delimiter = delimiter
	}

	var err error
	if opts.DefaultUserID, err = formID(r, formDefaultUserID); err != nil {
		return opts, err
	}
	if opts.DefaultGroupID, err = formID(r, formDefaultGroupID); err != nil {
		return opts, err
	}

	return withRequestUser(r, opts), nil
}

func (h *Handler) directoryOptions(r *http.Request) (models.ImportOptions, error) {
	var req models.DirectoryImportRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return models.ImportOptions{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
	}

	opts := models.ImportOptions{
		DefaultUserID:  req.DefaultUserID,
		DefaultGroupID: req.DefaultGroupID,
		Directory:      req.Directory,
	}
	return withRequestUser(r, opts), nil
}

func formID(r *http.Request, field string) (int64, error) {
	value := r.FormValue(field)
	if value == "" {
		return 0, nil
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidOption, field)
	}
	return id, nil
}

// withRequestUser makes the authenticated user the owner of imported
// records unless the request names one.
func withRequestUser(r *http.Request, opts models.ImportOptions) models.ImportOptions {
	if opts.DefaultUserID == 0 {
		if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
			opts.DefaultUserID = userID
		}
	}
	return opts
}
