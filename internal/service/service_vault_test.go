// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-vault-import/internal/crypto"
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/mock"
	"github.com/MKhiriev/go-vault-import/internal/store"
	"github.com/MKhiriev/go-vault-import/internal/validators"
	"github.com/MKhiriev/go-vault-import/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var (
	testCipher = crypto.NewCipher(crypto.Argon2Params{Time: 1, Memory: 1024, Threads: 1})
	testHasher = crypto.NewPassphraseHasher(bcrypt.MinCost)
	errStorage = errors.New("storage error")
)

func testSettings(master string) VaultSettings {
	return VaultSettings{
		MasterPassword: master,
		Cipher:         testCipher,
		Hasher:         testHasher,
		Validator:      validators.NewVaultValidator(),
	}
}

func validAccount() models.Account {
	return models.Account{Name: "mail", Login: "bob", CategoryID: 1, ClientID: 2}
}

// ─────────────────────────────────────────────
// AccountService
// ─────────────────────────────────────────────

func TestAccountService_WrapsPlaintextPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)

	var stored models.Account
	repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Account) (int64, error) {
			stored = a
			return 5, nil
		})

	account := validAccount()
	account.Password = "plain"
	id, err := NewAccountService(repo, testSettings("master"), logger.Nop()).CreateAccount(context.Background(), account)

	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	require.NotEmpty(t, stored.Key)
	assert.NotEqual(t, "plain", stored.Password)

	plain, err := testCipher.Decrypt(stored.Password, stored.Key, "master")
	require.NoError(t, err)
	assert.Equal(t, "plain", string(plain))
}

func TestAccountService_KeepsWrappedPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)

	account := validAccount()
	account.Password, account.Key = "cipher", "key"
	repo.EXPECT().CreateAccount(gomock.Any(), account).Return(int64(1), nil)

	_, err := NewAccountService(repo, testSettings(""), logger.Nop()).CreateAccount(context.Background(), account)

	require.NoError(t, err)
}

func TestAccountService_NoMasterPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)

	account := validAccount()
	account.Password = "plain"
	_, err := NewAccountService(repo, testSettings(""), logger.Nop()).CreateAccount(context.Background(), account)

	require.ErrorIs(t, err, ErrNoMasterPassword)
}

func TestAccountService_InvalidAccount(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(a *models.Account)
		wantErr error
	}{
		{name: "empty name", modify: func(a *models.Account) { a.Name = " " }, wantErr: validators.ErrEmptyName},
		{name: "no category", modify: func(a *models.Account) { a.CategoryID = 0 }, wantErr: validators.ErrUnresolvedCategory},
		{name: "no client", modify: func(a *models.Account) { a.ClientID = 0 }, wantErr: validators.ErrUnresolvedClient},
		{name: "key without password", modify: func(a *models.Account) { a.Key = "k" }, wantErr: validators.ErrKeyWithoutPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockAccountRepository(ctrl)

			account := validAccount()
			tt.modify(&account)
			_, err := NewAccountService(repo, testSettings("master"), logger.Nop()).CreateAccount(context.Background(), account)

			require.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountService_CipherFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	cipher := mock.NewMockCipher(ctrl)
	cipher.EXPECT().Encrypt([]byte("plain"), "master").Return("", "", errors.New("entropy exhausted"))

	settings := testSettings("master")
	settings.Cipher = cipher

	account := validAccount()
	account.Password = "plain"
	_, err := NewAccountService(repo, settings, logger.Nop()).CreateAccount(context.Background(), account)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy exhausted")
}

// ─────────────────────────────────────────────
// Reference services
// ─────────────────────────────────────────────

func TestCategoryService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCategoryRepository(ctrl)
	svc := NewCategoryService(repo, validators.NewVaultValidator())
	ctx := context.Background()

	repo.EXPECT().CreateCategory(ctx, models.Category{Name: "Web"}).Return(int64(3), nil)
	repo.EXPECT().FindCategoryByName(ctx, "Web").Return(models.Category{CategoryID: 3, Name: "Web"}, nil)

	id, err := svc.CreateCategory(ctx, models.Category{Name: "Web"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	found, err := svc.FindCategoryByName(ctx, "Web")
	require.NoError(t, err)
	assert.Equal(t, int64(3), found.CategoryID)

	_, err = svc.CreateCategory(ctx, models.Category{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientService_PassesDuplicateThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockClientRepository(ctrl)
	svc := NewClientService(repo, validators.NewVaultValidator())
	ctx := context.Background()

	repo.EXPECT().CreateClient(ctx, models.Client{Name: "ACME"}).Return(int64(0), models.ErrAlreadyExists)
	repo.EXPECT().FindClientByName(ctx, "ACME").Return(models.Client{}, models.ErrNotFound)

	_, err := svc.CreateClient(ctx, models.Client{Name: "ACME"})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	_, err = svc.FindClientByName(ctx, "ACME")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestTagService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTagRepository(ctrl)
	svc := NewTagService(repo, validators.NewVaultValidator())
	ctx := context.Background()

	repo.EXPECT().CreateTag(ctx, models.Tag{Name: "prod"}).Return(int64(1), nil)
	repo.EXPECT().FindTagByName(ctx, "prod").Return(models.Tag{TagID: 1, Name: "prod"}, nil)

	_, err := svc.CreateTag(ctx, models.Tag{Name: "prod"})
	require.NoError(t, err)
	tag, err := svc.FindTagByName(ctx, "prod")
	require.NoError(t, err)
	assert.Equal(t, int64(1), tag.TagID)
}

func TestUserGroupAndUserServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	groups := mock.NewMockUserGroupRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)
	ctx := context.Background()

	groups.EXPECT().CreateUserGroup(ctx, models.UserGroup{Name: "ops"}).Return(int64(2), nil)
	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(int64(0), errStorage)

	id, err := NewUserGroupService(groups, validators.NewVaultValidator()).CreateUserGroup(ctx, models.UserGroup{Name: "ops"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)

	userSvc := NewUserService(users, validators.NewVaultValidator())
	_, err = userSvc.CreateUser(ctx, models.User{Name: "Bob"})
	assert.ErrorIs(t, err, validators.ErrEmptyLogin)

	_, err = userSvc.CreateUser(ctx, models.User{Name: "Bob", Login: "bob"})
	assert.ErrorIs(t, err, errStorage)
}

func TestUserService_CheckDefaults(t *testing.T) {
	tests := []struct {
		name      string
		groupID   int64
		profileID int64
		setup     func(users *mock.MockUserRepository)
		wantErr   error
	}{
		{
			name:  "zero ids are not looked up",
			setup: func(*mock.MockUserRepository) {},
		},
		{
			name:      "both exist",
			groupID:   5,
			profileID: 6,
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().UserGroupExists(gomock.Any(), int64(5)).Return(true, nil)
				users.EXPECT().UserProfileExists(gomock.Any(), int64(6)).Return(true, nil)
			},
		},
		{
			name:      "unknown profile",
			profileID: 7,
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().UserProfileExists(gomock.Any(), int64(7)).Return(false, nil)
			},
			wantErr: models.ErrNotFound,
		},
		{
			name:    "group lookup fails",
			groupID: 5,
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().UserGroupExists(gomock.Any(), int64(5)).Return(false, errStorage)
			},
			wantErr: errStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mock.NewMockUserRepository(ctrl)
			tt.setup(users)

			err := NewUserService(users, validators.NewVaultValidator()).CheckDefaults(context.Background(), tt.groupID, tt.profileID)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// MasterKeyService
// ─────────────────────────────────────────────

func TestMasterKeyService_EnsureStoresHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockConfigRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().GetParam(ctx, store.ParamMasterPasswordHash).Return("", models.ErrNotFound)
	repo.EXPECT().SetParam(ctx, store.ParamMasterPasswordHash, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, hash string) error {
			assert.True(t, testHasher.Matches("master", hash))
			return nil
		})

	err := NewMasterKeyService(repo, testHasher, logger.Nop()).EnsureMasterKeyHash(ctx, "master")

	require.NoError(t, err)
}

func TestMasterKeyService_EnsureChecksExistingHash(t *testing.T) {
	hash, err := testHasher.Hash("master")
	require.NoError(t, err)

	tests := []struct {
		name       string
		passphrase string
		wantErr    error
	}{
		{name: "match", passphrase: "master"},
		{name: "mismatch", passphrase: "other", wantErr: ErrMasterPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockConfigRepository(ctrl)
			repo.EXPECT().GetParam(gomock.Any(), store.ParamMasterPasswordHash).Return(hash, nil)

			err := NewMasterKeyService(repo, testHasher, logger.Nop()).EnsureMasterKeyHash(context.Background(), tt.passphrase)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMasterKeyService_EnsureErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockConfigRepository(ctrl)
	svc := NewMasterKeyService(repo, testHasher, logger.Nop())
	ctx := context.Background()

	require.ErrorIs(t, svc.EnsureMasterKeyHash(ctx, ""), ErrNoMasterPassword)

	repo.EXPECT().GetParam(ctx, store.ParamMasterPasswordHash).Return("", errStorage)
	require.ErrorIs(t, svc.EnsureMasterKeyHash(ctx, "master"), errStorage)

	repo.EXPECT().GetParam(ctx, store.ParamMasterPasswordHash).Return("", models.ErrNotFound)
	repo.EXPECT().SetParam(ctx, store.ParamMasterPasswordHash, gomock.Any()).Return(errStorage)
	require.ErrorIs(t, svc.EnsureMasterKeyHash(ctx, "master"), errStorage)
}
