// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-vault-import/internal/importer"
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/mock"
	"github.com/MKhiriev/go-vault-import/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func object(dn string, attrs map[string]string) models.DirectoryObject {
	o := models.DirectoryObject{DN: dn, Attributes: make(map[string][]string)}
	for k, v := range attrs {
		o.Attributes[k] = []string{v}
	}
	return o
}

func TestImportDirectoryGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mock.NewMockDirectorySearcher(ctrl)
	searcher.EXPECT().
		Search(gomock.Any(), importer.DefaultGroupFilter, []string{"cn"}).
		Return([]models.DirectoryObject{
			object("cn=admins,dc=example", map[string]string{"cn": "admins"}),
			object("cn=nameless,dc=example", nil),
			object("cn=ops,dc=example", map[string]string{"cn": "ops"}),
			object("cn=dup,dc=example", map[string]string{"cn": "dup"}),
		}, nil)

	f := newServiceFixture(t, searcher)
	f.vault.groups.EXPECT().
		CreateUserGroup(gomock.Any(), models.UserGroup{Name: "admins", Description: "Imported from LDAP"}).
		Return(int64(1), nil)
	f.vault.groups.EXPECT().
		CreateUserGroup(gomock.Any(), models.UserGroup{Name: "ops", Description: "Imported from LDAP"}).
		Return(int64(2), nil)
	f.vault.groups.EXPECT().
		CreateUserGroup(gomock.Any(), models.UserGroup{Name: "dup", Description: "Imported from LDAP"}).
		Return(int64(0), models.ErrAlreadyExists)

	result, err := f.service.ImportDirectoryGroups(context.Background(), defaultOptions())

	require.NoError(t, err)
	assert.Equal(t, importer.FormatDirectoryGroups, result.Format)
	require.NotNil(t, result.Directory)
	assert.Equal(t, models.DirectoryTally{Seen: 4, Synced: 2, Errored: 1}, *result.Directory)
	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "cn=dup,dc=example", result.Failures[0].Position)

	found := f.notifier.named(importer.EventDirectoryFound)
	require.Len(t, found, 1)
	assert.Equal(t, 4, found[0].Details["count"])
	assert.Len(t, f.notifier.named(importer.EventDirectorySynced), 2)
	assert.Len(t, f.notifier.named(importer.EventDirectoryError), 1)
}

func TestImportDirectoryUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mock.NewMockDirectorySearcher(ctrl)
	searcher.EXPECT().
		Search(gomock.Any(), "(uid=*)", []string{"cn", "sAMAccountName", "mail"}).
		Return([]models.DirectoryObject{
			object("uid=bob", map[string]string{"cn": "Bob Smith", "sAMAccountName": "bob", "mail": "bob@example.com"}),
			object("uid=nologin", map[string]string{"cn": "No Login"}),
			object("uid=eve", map[string]string{"cn": "Eve", "sAMAccountName": "eve"}),
		}, nil)

	f := newServiceFixture(t, searcher)
	f.vault.users.EXPECT().CheckDefaults(gomock.Any(), int64(5), int64(6)).Return(nil)
	f.vault.users.EXPECT().CreateUser(gomock.Any(), models.User{
		Name:          "Bob Smith",
		Login:         "bob",
		Email:         "bob@example.com",
		Notes:         "Imported from LDAP",
		UserGroupID:   5,
		UserProfileID: 6,
		IsLDAP:        true,
	}).Return(int64(1), nil)
	f.vault.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("login too long"))

	opts := defaultOptions()
	opts.Directory = models.DirectoryOptions{
		Filter:           "(uid=*)",
		Mapping:          models.DirectoryAttributeMapping{UserFullName: "cn", UserLogin: "sAMAccountName"},
		DefaultGroupID:   5,
		DefaultProfileID: 6,
	}
	result, err := f.service.ImportDirectoryUsers(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, importer.FormatDirectoryUsers, result.Format)
	assert.Equal(t, models.DirectoryTally{Seen: 3, Synced: 1, Errored: 1}, *result.Directory)
	assert.Equal(t, "eve", result.Failures[0].Record)
	assert.Contains(t, result.Failures[0].Reason, "login too long")
}

func TestImportDirectoryUsers_AttributeNamesIgnoreCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mock.NewMockDirectorySearcher(ctrl)
	searcher.EXPECT().
		Search(gomock.Any(), gomock.Any(), []string{"displayname", "samaccountname", "MAIL"}).
		Return([]models.DirectoryObject{
			object("cn=jdoe,dc=corp", map[string]string{"displayName": "John Doe", "sAMAccountName": "jdoe", "mail": "jdoe@corp.example"}),
		}, nil)

	f := newServiceFixture(t, searcher)
	f.vault.users.EXPECT().CheckDefaults(gomock.Any(), int64(0), int64(0)).Return(nil)
	f.vault.users.EXPECT().CreateUser(gomock.Any(), models.User{
		Name:   "John Doe",
		Login:  "jdoe",
		Email:  "jdoe@corp.example",
		Notes:  "Imported from LDAP",
		IsLDAP: true,
	}).Return(int64(1), nil)

	opts := defaultOptions()
	opts.Directory.Mapping = models.DirectoryAttributeMapping{UserFullName: "displayname", UserLogin: "samaccountname", UserEmail: "MAIL"}
	result, err := f.service.ImportDirectoryUsers(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, models.DirectoryTally{Seen: 1, Synced: 1}, *result.Directory)
	assert.Equal(t, 1, result.Imported)
}

func TestImportDirectory_SearchFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mock.NewMockDirectorySearcher(ctrl)
	searcher.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("ldap: bind failed"))

	f := newServiceFixture(t, searcher)

	_, err := f.service.ImportDirectoryGroups(context.Background(), defaultOptions())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bind failed")
}

func TestImportDirectory_NotConfigured(t *testing.T) {
	f := newServiceFixture(t, nil)

	_, err := f.service.ImportDirectoryUsers(context.Background(), defaultOptions())

	require.ErrorIs(t, err, importer.ErrDirectoryNotConfigured)
}

func TestImportDirectoryUsers_UnknownDefaultProfileIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mock.NewMockDirectorySearcher(ctrl)

	f := newServiceFixture(t, searcher)
	f.vault.users.EXPECT().
		CheckDefaults(gomock.Any(), int64(0), int64(7)).
		Return(fmt.Errorf("default user profile 7: %w", models.ErrNotFound))

	opts := defaultOptions()
	opts.Directory.DefaultProfileID = 7
	result, err := f.service.ImportDirectoryUsers(context.Background(), opts)

	require.ErrorIs(t, err, importer.ErrInvalidDirectoryDefaults)
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Zero(t, result.Imported)
	assert.Empty(t, f.notifier.named(importer.EventDirectoryFound))
}

func TestImportDirectoryUsers_InstallationDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mock.NewMockDirectorySearcher(ctrl)
	searcher.EXPECT().
		Search(gomock.Any(), importer.DefaultUserFilter, []string{"cn", "uid", "mail"}).
		Return([]models.DirectoryObject{
			object("uid=bob", map[string]string{"cn": "Bob", "uid": "bob"}),
		}, nil)

	vault := newVaultMocks(ctrl)
	vault.users.EXPECT().CheckDefaults(gomock.Any(), int64(40), int64(3)).Return(nil)
	vault.users.EXPECT().CreateUser(gomock.Any(), models.User{
		Name:          "Bob",
		Login:         "bob",
		Notes:         "Imported from LDAP",
		UserGroupID:   40,
		UserProfileID: 3,
		IsLDAP:        true,
	}).Return(int64(1), nil)

	svc := importer.NewImportService(importer.Dependencies{
		Transactor: vault.transactor(ctrl),
		Directory:  searcher,
		Notifier:   &recordingNotifier{},
	}, importer.Settings{
		Directory: models.DirectoryOptions{
			Mapping:          models.DirectoryAttributeMapping{UserFullName: "cn"},
			DefaultGroupID:   30,
			DefaultProfileID: 3,
		},
	}, logger.Nop())

	opts := defaultOptions()
	opts.Directory.DefaultGroupID = 40
	result, err := svc.ImportDirectoryUsers(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
}
