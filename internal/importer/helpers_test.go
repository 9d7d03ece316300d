// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer_test

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-vault-import/internal/crypto"
	"github.com/MKhiriev/go-vault-import/internal/importer"
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/mock"
	"github.com/MKhiriev/go-vault-import/models"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Vault mocks
// ─────────────────────────────────────────────

type vaultMocks struct {
	accounts   *mock.MockAccountService
	categories *mock.MockCategoryService
	clients    *mock.MockClientService
	tags       *mock.MockTagService
	groups     *mock.MockUserGroupService
	users      *mock.MockUserService
	masterKey  *mock.MockMasterKeyService
	savepoints importer.Savepoints
}

func newVaultMocks(ctrl *gomock.Controller) *vaultMocks {
	return &vaultMocks{
		accounts:   mock.NewMockAccountService(ctrl),
		categories: mock.NewMockCategoryService(ctrl),
		clients:    mock.NewMockClientService(ctrl),
		tags:       mock.NewMockTagService(ctrl),
		groups:     mock.NewMockUserGroupService(ctrl),
		users:      mock.NewMockUserService(ctrl),
		masterKey:  mock.NewMockMasterKeyService(ctrl),
	}
}

func (v *vaultMocks) vault() importer.Vault {
	return importer.Vault{
		Accounts:   v.accounts,
		Categories: v.categories,
		Clients:    v.clients,
		Tags:       v.tags,
		UserGroups: v.groups,
		Users:      v.users,
		MasterKey:  v.masterKey,
		Savepoints: v.savepoints,
	}
}

// savepointLog records how every confined write ended. The failAt'th
// savepoint cannot be opened.
type savepointLog struct {
	failAt   int
	calls    int
	outcomes []string
}

func (s *savepointLog) WithSavepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	if s.calls == s.failAt {
		return fmt.Errorf("%w: connection reset", models.ErrSavepoint)
	}
	if err := fn(ctx); err != nil {
		s.outcomes = append(s.outcomes, "rolled back")
		return err
	}
	s.outcomes = append(s.outcomes, "released")
	return nil
}

// transactor expects one transaction and runs fn against the mocked vault.
func (v *vaultMocks) transactor(ctrl *gomock.Controller) *mock.MockTransactor {
	tx := mock.NewMockTransactor(ctrl)
	tx.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, importer.Vault) error) error {
			return fn(ctx, v.vault())
		})
	return tx
}

// ─────────────────────────────────────────────
// Recording notifier
// ─────────────────────────────────────────────

type recordingNotifier struct {
	mu     sync.Mutex
	events []importer.Event
}

func (n *recordingNotifier) Notify(_ context.Context, event importer.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) named(name string) []importer.Event {
	n.mu.Lock()
	defer n.mu.Unlock()

	var out []importer.Event
	for _, e := range n.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// ─────────────────────────────────────────────
// Service
// ─────────────────────────────────────────────

const (
	testIntegrityKey = "installation-salt"
	testUserID       = int64(11)
	testGroupID      = int64(22)
)

var (
	testCipher = crypto.NewCipher(crypto.Argon2Params{Time: 1, Memory: 1024, Threads: 1})
	testHasher = crypto.NewPassphraseHasher(bcrypt.MinCost)
)

type serviceFixture struct {
	vault    *vaultMocks
	notifier *recordingNotifier
	service  importer.ImportService
}

func newServiceFixture(t *testing.T, directory importer.DirectorySearcher) *serviceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	vault := newVaultMocks(ctrl)
	notifier := &recordingNotifier{}

	svc := importer.NewImportService(importer.Dependencies{
		Transactor:  vault.transactor(ctrl),
		Decrypter:   crypto.NewVersionedDecrypter(testCipher),
		Passphrases: testHasher,
		Directory:   directory,
		Notifier:    notifier,
	}, importer.Settings{IntegrityKey: testIntegrityKey}, logger.Nop())

	return &serviceFixture{vault: vault, notifier: notifier, service: svc}
}

func defaultOptions() models.ImportOptions {
	return models.ImportOptions{DefaultUserID: testUserID, DefaultGroupID: testGroupID}
}

func csvFile(body string) importer.FileHandle {
	return importer.FileHandle{Name: "accounts.csv", ContentType: "text/csv", Body: bytes.NewReader([]byte(body))}
}

func xmlFile(body []byte) importer.FileHandle {
	return importer.FileHandle{Name: "export.xml", ContentType: "text/xml", Body: bytes.NewReader(body)}
}
