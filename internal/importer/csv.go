// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-vault-import/models"
)

// csvFields is the number of fields of every data row:
// name, client, category, url, login, password, notes.
const csvFields = 7

const (
	csvName = iota
	csvClient
	csvCategory
	csvURL
	csvLogin
	csvPassword
	csvNotes
)

// importCSV reads header-less rows and submits one account per row. A row
// with the wrong number of fields aborts the run; a row without a client
// or category is skipped.
func (r *run) importCSV(ctx context.Context, body io.Reader) error {
	reader := csv.NewReader(body)
	reader.Comma = r.opts.Delimiter
	if reader.Comma == 0 {
		reader.Comma = ','
	}
	reader.FieldsPerRecord = -1

	rows := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return &LineError{Line: parseErr.StartLine, Err: fmt.Errorf("%w: %w", ErrImport, parseErr.Err)}
			}
			return fmt.Errorf("%w: read csv: %w", ErrImport, err)
		}

		line, _ := reader.FieldPos(0)
		rows++

		if len(record) != csvFields {
			return &LineError{
				Line: line,
				Err:  fmt.Errorf("%w: expected %d fields, got %d", ErrImport, csvFields, len(record)),
			}
		}

		if f := r.importCSVRow(ctx, record, line); f != nil {
			r.skip(ctx, f)
		}
	}

	if rows == 0 {
		return ErrNoLinesRead
	}
	return nil
}

func (r *run) importCSVRow(ctx context.Context, record []string, line int) *models.ImportFailure {
	name := record[csvName]
	position := fmt.Sprintf("line %d", line)

	clientName := strings.TrimSpace(record[csvClient])
	categoryName := strings.TrimSpace(record[csvCategory])
	if clientName == "" || categoryName == "" {
		return failure(name, position, ErrMissingReference)
	}

	clientID, err := r.resolver.ResolveClient(ctx, models.Client{Name: clientName})
	if err != nil {
		return failure(name, position, err)
	}
	categoryID, err := r.resolver.ResolveCategory(ctx, models.Category{Name: categoryName})
	if err != nil {
		return failure(name, position, err)
	}

	return r.submit(ctx, models.Account{
		Name:       name,
		ClientID:   clientID,
		CategoryID: categoryID,
		URL:        record[csvURL],
		Login:      record[csvLogin],
		Password:   record[csvPassword],
		Notes:      record[csvNotes],
	}, position)
}
