// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/models"
)

// userRepository handles user creation and lookup against the "users" table.
type userRepository struct {
	q DBTX
	b sq.StatementBuilderType
}

// NewUserRepository constructs a [UserRepository] bound to q.
func NewUserRepository(q DBTX, b sq.StatementBuilderType) UserRepository {
	return &userRepository{q: q, b: b}
}

// CreateUser persists a new user record and returns its id.
//
// Error handling:
//   - login already taken → [models.ErrAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (int64, error) {
	log := logger.FromContext(ctx)

	id, err := insertUniqueReturningID(ctx, r.q, r.b.Insert(user.TableName()).
		Columns("login", "name", "email", "notes", "user_group_id", "user_profile_id", "is_ldap").
		Values(user.Login, user.Name, user.Email, user.Notes,
			nullableID(user.UserGroupID), nullableID(user.UserProfileID), user.IsLDAP), "login")
	if err != nil {
		if !errors.Is(err, models.ErrAlreadyExists) {
			log.Err(err).
				Str("func", "*userRepository.CreateUser").
				Str("login", user.Login).
				Msg("failed to insert user")
		}
		return 0, err
	}

	return id, nil
}

// FindUserByLogin retrieves the user whose login matches. An empty result
// is reported as [models.ErrNotFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	query, args, err := r.b.Select("id", "login", "name", "email", "notes",
		"COALESCE(user_group_id, 0)", "COALESCE(user_profile_id, 0)", "is_ldap", "created_at").
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var u models.User
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&u.UserID, &u.Login, &u.Name, &u.Email, &u.Notes,
		&u.UserGroupID, &u.UserProfileID, &u.IsLDAP, &u.CreatedAt,
	)
	if err != nil {
		return models.User{}, mapReadError(err)
	}

	return u, nil
}

// UserGroupExists reports whether a user may reference the group id.
func (r *userRepository) UserGroupExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "user_groups", id)
}

// UserProfileExists reports whether a user may reference the profile id.
func (r *userRepository) UserProfileExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "user_profiles", id)
}

func (r *userRepository) exists(ctx context.Context, table string, id int64) (bool, error) {
	query, args, err := r.b.Select("1").From(table).Where(sq.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return true, nil
}
