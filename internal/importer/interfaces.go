// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"context"
	"io"

	"github.com/MKhiriev/go-vault-import/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/importer_mock.go -package=mock

// ImportService runs imports. Each call is one run inside one storage
// transaction: a returned error means nothing was committed.
type ImportService interface {
	// ImportFile imports a CSV, native XML or KeePass XML file.
	ImportFile(ctx context.Context, file FileHandle, opts models.ImportOptions) (models.ImportResult, error)

	// ImportDirectoryGroups creates a user group per directory group.
	ImportDirectoryGroups(ctx context.Context, opts models.ImportOptions) (models.ImportResult, error)

	// ImportDirectoryUsers creates a vault user per directory user.
	ImportDirectoryUsers(ctx context.Context, opts models.ImportOptions) (models.ImportResult, error)
}

// AccountService creates vault accounts. A password given without key
// material is wrapped by the vault under its live master key.
type AccountService interface {
	CreateAccount(ctx context.Context, account models.Account) (int64, error)
}

// CategoryService creates and looks up categories. CreateCategory returns
// [models.ErrAlreadyExists] for a taken name and FindCategoryByName returns
// [models.ErrNotFound] when nothing matches.
type CategoryService interface {
	CreateCategory(ctx context.Context, category models.Category) (int64, error)
	FindCategoryByName(ctx context.Context, name string) (models.Category, error)
}

// ClientService creates and looks up clients.
type ClientService interface {
	CreateClient(ctx context.Context, client models.Client) (int64, error)
	FindClientByName(ctx context.Context, name string) (models.Client, error)
}

// TagService creates and looks up tags.
type TagService interface {
	CreateTag(ctx context.Context, tag models.Tag) (int64, error)
	FindTagByName(ctx context.Context, name string) (models.Tag, error)
}

// UserGroupService creates user groups.
type UserGroupService interface {
	CreateUserGroup(ctx context.Context, group models.UserGroup) (int64, error)
}

// UserService creates users.
type UserService interface {
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// CheckDefaults fails with [models.ErrNotFound] when a non-zero group or
	// profile id names no stored row. Zero ids are not checked.
	CheckDefaults(ctx context.Context, groupID, profileID int64) error
}

// MasterKeyService exposes the hash of the vault's live master passphrase.
type MasterKeyService interface {
	CurrentMasterKeyHash(ctx context.Context) (string, error)
}

// Vault is the set of vault services bound to one transaction.
type Vault struct {
	Accounts   AccountService
	Categories CategoryService
	Clients    ClientService
	Tags       TagService
	UserGroups UserGroupService
	Users      UserService
	MasterKey  MasterKeyService

	// Savepoints confines the writes of one record. Nil runs writes
	// directly on the transaction.
	Savepoints Savepoints
}

// Savepoints runs fn inside a savepoint of the open transaction. When fn
// fails only its own writes are undone, so sibling records still commit.
// A failure to manage the savepoint wraps [models.ErrSavepoint].
type Savepoints interface {
	WithSavepoint(ctx context.Context, fn func(ctx context.Context) error) error
}

// Transactor runs fn with a [Vault] bound to a single storage transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context, vault Vault) error) error
}

// Decrypter reverses the encryption of exported data for a format version.
type Decrypter interface {
	Decrypt(version int, ciphertext, key, passphrase string) ([]byte, error)
}

// PassphraseChecker checks a passphrase against a one-way hash.
type PassphraseChecker interface {
	Matches(passphrase, hash string) bool
}

// Notifier receives progress, warning and error events of a run. It is
// observational only.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// DirectorySearcher queries a directory server.
type DirectorySearcher interface {
	Search(ctx context.Context, filter string, attributes []string) ([]models.DirectoryObject, error)
}

// FileHandle is an uploaded or fetched import file.
type FileHandle struct {
	// Name is used for logging only.
	Name string

	// ContentType is the declared MIME type of the file.
	ContentType string

	Body io.ReadSeeker
}
