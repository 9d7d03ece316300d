// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-import/models"
)

func TestCreateAccount_WithTags(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	account := models.Account{
		Name:       "github",
		Login:      "octocat",
		URL:        "https://github.com",
		Notes:      "n",
		Password:   "cipher",
		Key:        "key",
		CategoryID: 1,
		ClientID:   2,
		TagIDs:     []int64{5, 6, 5},
		UserID:     3,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts (name,login,url,notes,pass,pass_key,category_id,client_id,user_id,user_group_id) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id")).
		WithArgs("github", "octocat", "https://github.com", "n", "cipher", "key", int64(1), int64(2), int64(3), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO account_tags (account_id,tag_id) VALUES ($1,$2),($3,$4)")).
		WithArgs(int64(100), int64(5), int64(100), int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	id, err := NewAccountRepository(db, builder(DialectPostgres)).CreateAccount(context.Background(), account)

	require.NoError(t, err)
	assert.Equal(t, int64(100), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_NoTags(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err = NewAccountRepository(db, builder(DialectPostgres)).
		CreateAccount(context.Background(), models.Account{Name: "a", CategoryID: 1, ClientID: 1})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_TagLinkFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec("INSERT INTO account_tags").
		WillReturnError(errors.New("fk violation"))

	_, err = NewAccountRepository(db, builder(DialectPostgres)).
		CreateAccount(context.Background(), models.Account{Name: "a", CategoryID: 1, ClientID: 1, TagIDs: []int64{9}})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestConfigRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO config (parameter,value) VALUES ($1,$2) ON CONFLICT (parameter) DO UPDATE SET value = excluded.value")).
		WithArgs(ParamMasterPasswordHash, "hash").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM config WHERE parameter = $1")).
		WithArgs(ParamMasterPasswordHash).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("hash"))
	mock.ExpectQuery("SELECT value FROM config").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	repo := NewConfigRepository(db, builder(DialectPostgres))
	ctx := context.Background()

	require.NoError(t, repo.SetParam(ctx, ParamMasterPasswordHash, "hash"))

	v, err := repo.GetParam(ctx, ParamMasterPasswordHash)
	require.NoError(t, err)
	assert.Equal(t, "hash", v)

	_, err = repo.GetParam(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
