// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-import/internal/crypto"
	"github.com/MKhiriev/go-vault-import/internal/importer"
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/store"
	"github.com/MKhiriev/go-vault-import/internal/validators"
	"github.com/MKhiriev/go-vault-import/models"
)

// VaultSettings are the parameters shared by the vault services.
type VaultSettings struct {
	// MasterPassword wraps plaintext passwords of created accounts.
	MasterPassword string

	Cipher    crypto.Cipher
	Hasher    crypto.PassphraseHasher
	Validator validators.Validator
}

// NewVault builds the vault services over one set of repositories, usually
// bound to a transaction.
func NewVault(repos *store.Repositories, settings VaultSettings, logger *logger.Logger) importer.Vault {
	vault := importer.Vault{
		Accounts:   NewAccountService(repos.AccountRepository, settings, logger),
		Categories: NewCategoryService(repos.CategoryRepository, settings.Validator),
		Clients:    NewClientService(repos.ClientRepository, settings.Validator),
		Tags:       NewTagService(repos.TagRepository, settings.Validator),
		UserGroups: NewUserGroupService(repos.UserGroupRepository, settings.Validator),
		Users:      NewUserService(repos.UserRepository, settings.Validator),
		MasterKey:  NewMasterKeyService(repos.ConfigRepository, settings.Hasher, logger),
	}
	if repos.Savepoints != nil {
		vault.Savepoints = repos.Savepoints
	}
	return vault
}

// accountService validates accounts and wraps plaintext passwords under the
// master password before storing them.
type accountService struct {
	accountRepository store.AccountRepository

	cipher         crypto.Cipher
	masterPassword string
	validator      validators.Validator

	logger *logger.Logger
}

func NewAccountService(accountRepository store.AccountRepository, settings VaultSettings, logger *logger.Logger) importer.AccountService {
	return &accountService{
		accountRepository: accountRepository,
		cipher:            settings.Cipher,
		masterPassword:    settings.MasterPassword,
		validator:         settings.Validator,
		logger:            logger,
	}
}

func (a *accountService) CreateAccount(ctx context.Context, account models.Account) (int64, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, account); err != nil {
		log.Err(err).Str("func", "accountService.CreateAccount").Str("account", account.Name).Msg("invalid account")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if account.HasPlaintextPassword() {
		if a.masterPassword == "" {
			return 0, ErrNoMasterPassword
		}

		ciphertext, key, err := a.cipher.Encrypt([]byte(account.Password), a.masterPassword)
		if err != nil {
			log.Err(err).Str("func", "accountService.CreateAccount").Str("account", account.Name).Msg("password wrapping failed")
			return 0, fmt.Errorf("wrap password: %w", err)
		}
		account.Password, account.Key = ciphertext, key
	}

	return a.accountRepository.CreateAccount(ctx, account)
}

type categoryService struct {
	categoryRepository store.CategoryRepository
	validator          validators.Validator
}

func NewCategoryService(categoryRepository store.CategoryRepository, validator validators.Validator) importer.CategoryService {
	return &categoryService{categoryRepository: categoryRepository, validator: validator}
}

func (c *categoryService) CreateCategory(ctx context.Context, category models.Category) (int64, error) {
	if err := c.validator.Validate(ctx, category); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return c.categoryRepository.CreateCategory(ctx, category)
}

func (c *categoryService) FindCategoryByName(ctx context.Context, name string) (models.Category, error) {
	return c.categoryRepository.FindCategoryByName(ctx, name)
}

type clientService struct {
	clientRepository store.ClientRepository
	validator        validators.Validator
}

func NewClientService(clientRepository store.ClientRepository, validator validators.Validator) importer.ClientService {
	return &clientService{clientRepository: clientRepository, validator: validator}
}

func (c *clientService) CreateClient(ctx context.Context, client models.Client) (int64, error) {
	if err := c.validator.Validate(ctx, client); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return c.clientRepository.CreateClient(ctx, client)
}

func (c *clientService) FindClientByName(ctx context.Context, name string) (models.Client, error) {
	return c.clientRepository.FindClientByName(ctx, name)
}

type tagService struct {
	tagRepository store.TagRepository
	validator     validators.Validator
}

func NewTagService(tagRepository store.TagRepository, validator validators.Validator) importer.TagService {
	return &tagService{tagRepository: tagRepository, validator: validator}
}

func (t *tagService) CreateTag(ctx context.Context, tag models.Tag) (int64, error) {
	if err := t.validator.Validate(ctx, tag); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return t.tagRepository.CreateTag(ctx, tag)
}

func (t *tagService) FindTagByName(ctx context.Context, name string) (models.Tag, error) {
	return t.tagRepository.FindTagByName(ctx, name)
}

type userGroupService struct {
	userGroupRepository store.UserGroupRepository
	validator           validators.Validator
}

func NewUserGroupService(userGroupRepository store.UserGroupRepository, validator validators.Validator) importer.UserGroupService {
	return &userGroupService{userGroupRepository: userGroupRepository, validator: validator}
}

func (u *userGroupService) CreateUserGroup(ctx context.Context, group models.UserGroup) (int64, error) {
	if err := u.validator.Validate(ctx, group); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return u.userGroupRepository.CreateUserGroup(ctx, group)
}

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator) importer.UserService {
	return &userService{userRepository: userRepository, validator: validator}
}

func (u *userService) CreateUser(ctx context.Context, user models.User) (int64, error) {
	if err := u.validator.Validate(ctx, user); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return u.userRepository.CreateUser(ctx, user)
}

func (u *userService) CheckDefaults(ctx context.Context, groupID, profileID int64) error {
	checks := []struct {
		what   string
		id     int64
		exists func(context.Context, int64) (bool, error)
	}{
		{"user group", groupID, u.userRepository.UserGroupExists},
		{"user profile", profileID, u.userRepository.UserProfileExists},
	}
	for _, c := range checks {
		if c.id == 0 {
			continue
		}
		ok, err := c.exists(ctx, c.id)
		if err != nil {
			return fmt.Errorf("look up default %s %d: %w", c.what, c.id, err)
		}
		if !ok {
			return fmt.Errorf("default %s %d: %w", c.what, c.id, models.ErrNotFound)
		}
	}
	return nil
}

// masterKeyService keeps the bcrypt hash of the master password in the
// config table.
type masterKeyService struct {
	configRepository store.ConfigRepository
	hasher           crypto.PassphraseHasher

	logger *logger.Logger
}

func NewMasterKeyService(configRepository store.ConfigRepository, hasher crypto.PassphraseHasher, logger *logger.Logger) MasterKeyService {
	return &masterKeyService{configRepository: configRepository, hasher: hasher, logger: logger}
}

// CurrentMasterKeyHash returns [models.ErrNotFound] when no hash is stored.
func (m *masterKeyService) CurrentMasterKeyHash(ctx context.Context) (string, error) {
	return m.configRepository.GetParam(ctx, store.ParamMasterPasswordHash)
}

func (m *masterKeyService) EnsureMasterKeyHash(ctx context.Context, passphrase string) error {
	if passphrase == "" {
		return ErrNoMasterPassword
	}

	hash, err := m.CurrentMasterKeyHash(ctx)
	switch {
	case err == nil:
		if !m.hasher.Matches(passphrase, hash) {
			return ErrMasterPasswordMismatch
		}
		return nil
	case !errors.Is(err, models.ErrNotFound):
		return fmt.Errorf("read master key hash: %w", err)
	}

	hash, err = m.hasher.Hash(passphrase)
	if err != nil {
		return err
	}
	if err = m.configRepository.SetParam(ctx, store.ParamMasterPasswordHash, hash); err != nil {
		return fmt.Errorf("store master key hash: %w", err)
	}

	m.logger.Info().Str("func", "masterKeyService.EnsureMasterKeyHash").Msg("master key hash stored")
	return nil
}
