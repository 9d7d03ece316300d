// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/models"
)

// ── categories ───────────────────────────────────────────────────────────────

type categoryRepository struct {
	q DBTX
	b sq.StatementBuilderType
}

func NewCategoryRepository(q DBTX, b sq.StatementBuilderType) CategoryRepository {
	return &categoryRepository{q: q, b: b}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (int64, error) {
	id, err := insertUniqueReturningID(ctx, r.q, r.b.Insert("categories").
		Columns("name", "description").
		Values(category.Name, category.Description), "name")
	if err != nil {
		if !errors.Is(err, models.ErrAlreadyExists) {
			logger.FromContext(ctx).Err(err).
				Str("func", "categoryRepository.CreateCategory").
				Str("name", category.Name).
				Msg("failed to insert category")
		}
		return 0, err
	}
	return id, nil
}

func (r *categoryRepository) FindCategoryByName(ctx context.Context, name string) (models.Category, error) {
	query, args, err := r.b.Select("id", "name", "description").
		From("categories").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Category
	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&c.CategoryID, &c.Name, &c.Description); err != nil {
		return models.Category{}, mapReadError(err)
	}
	return c, nil
}

// ── clients ──────────────────────────────────────────────────────────────────

type clientRepository struct {
	q DBTX
	b sq.StatementBuilderType
}

func NewClientRepository(q DBTX, b sq.StatementBuilderType) ClientRepository {
	return &clientRepository{q: q, b: b}
}

func (r *clientRepository) CreateClient(ctx context.Context, client models.Client) (int64, error) {
	id, err := insertUniqueReturningID(ctx, r.q, r.b.Insert("clients").
		Columns("name", "description").
		Values(client.Name, client.Description), "name")
	if err != nil {
		if !errors.Is(err, models.ErrAlreadyExists) {
			logger.FromContext(ctx).Err(err).
				Str("func", "clientRepository.CreateClient").
				Str("name", client.Name).
				Msg("failed to insert client")
		}
		return 0, err
	}
	return id, nil
}

func (r *clientRepository) FindClientByName(ctx context.Context, name string) (models.Client, error) {
	query, args, err := r.b.Select("id", "name", "description").
		From("clients").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Client
	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&c.ClientID, &c.Name, &c.Description); err != nil {
		return models.Client{}, mapReadError(err)
	}
	return c, nil
}

// ── tags ─────────────────────────────────────────────────────────────────────

type tagRepository struct {
	q DBTX
	b sq.StatementBuilderType
}

func NewTagRepository(q DBTX, b sq.StatementBuilderType) TagRepository {
	return &tagRepository{q: q, b: b}
}

func (r *tagRepository) CreateTag(ctx context.Context, tag models.Tag) (int64, error) {
	id, err := insertUniqueReturningID(ctx, r.q, r.b.Insert("tags").
		Columns("name").
		Values(tag.Name), "name")
	if err != nil {
		if !errors.Is(err, models.ErrAlreadyExists) {
			logger.FromContext(ctx).Err(err).
				Str("func", "tagRepository.CreateTag").
				Str("name", tag.Name).
				Msg("failed to insert tag")
		}
		return 0, err
	}
	return id, nil
}

func (r *tagRepository) FindTagByName(ctx context.Context, name string) (models.Tag, error) {
	query, args, err := r.b.Select("id", "name").
		From("tags").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var t models.Tag
	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&t.TagID, &t.Name); err != nil {
		return models.Tag{}, mapReadError(err)
	}
	return t, nil
}

// ── user groups ──────────────────────────────────────────────────────────────

type userGroupRepository struct {
	q DBTX
	b sq.StatementBuilderType
}

func NewUserGroupRepository(q DBTX, b sq.StatementBuilderType) UserGroupRepository {
	return &userGroupRepository{q: q, b: b}
}

func (r *userGroupRepository) CreateUserGroup(ctx context.Context, group models.UserGroup) (int64, error) {
	id, err := insertUniqueReturningID(ctx, r.q, r.b.Insert("user_groups").
		Columns("name", "description").
		Values(group.Name, group.Description), "name")
	if err != nil {
		if !errors.Is(err, models.ErrAlreadyExists) {
			logger.FromContext(ctx).Err(err).
				Str("func", "userGroupRepository.CreateUserGroup").
				Str("name", group.Name).
				Msg("failed to insert user group")
		}
		return 0, err
	}
	return id, nil
}

func (r *userGroupRepository) FindUserGroupByName(ctx context.Context, name string) (models.UserGroup, error) {
	query, args, err := r.b.Select("id", "name", "description").
		From("user_groups").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return models.UserGroup{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var g models.UserGroup
	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&g.UserGroupID, &g.Name, &g.Description); err != nil {
		return models.UserGroup{}, mapReadError(err)
	}
	return g, nil
}
