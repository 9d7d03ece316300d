// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-vault-import/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists account records and their tag links.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (int64, error)
}

// CategoryRepository stores categories, unique by name.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (int64, error)
	FindCategoryByName(ctx context.Context, name string) (models.Category, error)
}

// ClientRepository stores clients, unique by name.
type ClientRepository interface {
	CreateClient(ctx context.Context, client models.Client) (int64, error)
	FindClientByName(ctx context.Context, name string) (models.Client, error)
}

// TagRepository stores tags, unique by name.
type TagRepository interface {
	CreateTag(ctx context.Context, tag models.Tag) (int64, error)
	FindTagByName(ctx context.Context, name string) (models.Tag, error)
}

// UserGroupRepository stores user groups, unique by name.
type UserGroupRepository interface {
	CreateUserGroup(ctx context.Context, group models.UserGroup) (int64, error)
	FindUserGroupByName(ctx context.Context, name string) (models.UserGroup, error)
}

// UserRepository stores users, unique by login.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (int64, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	UserGroupExists(ctx context.Context, id int64) (bool, error)
	UserProfileExists(ctx context.Context, id int64) (bool, error)
}

// ConfigRepository reads and writes installation parameters.
type ConfigRepository interface {
	GetParam(ctx context.Context, name string) (string, error)
	SetParam(ctx context.Context, name, value string) error
}
