// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/models"
)

type accountRepository struct {
	q DBTX
	b sq.StatementBuilderType
}

func NewAccountRepository(q DBTX, b sq.StatementBuilderType) AccountRepository {
	return &accountRepository{q: q, b: b}
}

// CreateAccount inserts the account row and links its tags. The password is
// stored as given: wrapping plaintext passwords is the service's job.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (int64, error) {
	log := logger.FromContext(ctx)

	id, err := insertReturningID(ctx, r.q, r.b.Insert(account.TableName()).
		Columns("name", "login", "url", "notes", "pass", "pass_key",
			"category_id", "client_id", "user_id", "user_group_id").
		Values(account.Name, account.Login, account.URL, account.Notes, account.Password, account.Key,
			account.CategoryID, account.ClientID, nullableID(account.UserID), nullableID(account.UserGroupID)))
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("account", account.Name).
			Msg("failed to insert account")
		return 0, err
	}

	if len(account.TagIDs) == 0 {
		return id, nil
	}

	insert := r.b.Insert("account_tags").Columns("account_id", "tag_id")
	for _, tagID := range uniqueIDs(account.TagIDs) {
		insert = insert.Values(id, tagID)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Int64("account_id", id).
			Msg("failed to link account tags")
		return 0, mapWriteError(err)
	}

	return id, nil
}

// nullableID stores unset owner references as NULL.
func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
