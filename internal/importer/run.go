// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/models"
)

// run is the state of a single import. It lives for one transaction.
type run struct {
	*importService

	opts     models.ImportOptions
	vault    Vault
	cache    *ResolutionCache
	resolver *Resolver
	result   *models.ImportResult
	scope    *recordScope

	// masterChecked and masterMatches memoize the master passphrase check.
	masterChecked bool
	masterMatches bool
}

func (s *importService) newRun(vault Vault, opts models.ImportOptions, result *models.ImportResult) *run {
	scope := &recordScope{savepoints: vault.Savepoints}
	vault.Savepoints = scope

	cache := NewResolutionCache()
	return &run{
		importService: s,
		opts:          opts,
		vault:         vault,
		cache:         cache,
		resolver:      NewResolver(cache, vault),
		result:        result,
		scope:         scope,
	}
}

// recordScope wraps the vault savepoints of a run and remembers the first
// failure to manage one. After it every write is refused and the run fails.
type recordScope struct {
	savepoints Savepoints
	broken     error
}

func (s *recordScope) WithSavepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.broken != nil {
		return s.broken
	}
	if s.savepoints == nil {
		return fn(ctx)
	}

	err := s.savepoints.WithSavepoint(ctx, fn)
	if errors.Is(err, models.ErrSavepoint) {
		s.broken = err
	}
	return err
}

// confine runs write inside a savepoint when sp is set.
func confine(ctx context.Context, sp Savepoints, write func(ctx context.Context) error) error {
	if sp == nil {
		return write(ctx)
	}
	return sp.WithSavepoint(ctx, write)
}

// owned applies the default owners of the run to an account.
func (r *run) owned(account models.Account) models.Account {
	if account.UserID == 0 {
		account.UserID = r.opts.DefaultUserID
	}
	if account.UserGroupID == 0 {
		account.UserGroupID = r.opts.DefaultGroupID
	}
	return account
}

// submit hands an account to the vault. A refused account is a recoverable
// failure of that record.
func (r *run) submit(ctx context.Context, account models.Account, position string) *models.ImportFailure {
	err := confine(ctx, r.vault.Savepoints, func(ctx context.Context) error {
		_, err := r.vault.Accounts.CreateAccount(ctx, r.owned(account))
		return err
	})
	if err != nil {
		return failure(account.Name, position, fmt.Errorf("create account: %w", err))
	}
	r.imported(ctx, account.Name, position)
	return nil
}

func (r *run) imported(ctx context.Context, record, position string) {
	r.result.Imported++
	r.notifier.Notify(ctx, Event{
		Name:    EventRecordImported,
		Level:   LevelProgress,
		Details: map[string]any{"record": record, "position": position},
	})
}

// skip records a recoverable failure and reports it on the error channel.
func (r *run) skip(ctx context.Context, f *models.ImportFailure) {
	r.result.Skipped++
	r.result.Failures = append(r.result.Failures, *f)

	logger.FromContext(ctx).Error().
		Str("func", "run.skip").
		Str("record", f.Record).
		Str("position", f.Position).
		Str("reason", f.Reason).
		Msg("record skipped")

	r.notifier.Notify(ctx, Event{
		Name:    EventRecordSkipped,
		Level:   LevelError,
		Details: map[string]any{"record": f.Record, "position": f.Position, "reason": f.Reason},
	})
}

// warn records a non-fatal condition of the whole run.
func (r *run) warn(ctx context.Context, message string) {
	r.result.Warnings = append(r.result.Warnings, message)

	logger.FromContext(ctx).Warn().Str("func", "run.warn").Msg(message)

	r.notifier.Notify(ctx, Event{
		Name:    EventWarning,
		Level:   LevelWarning,
		Details: map[string]any{"message": message},
	})
}

func failure(record, position string, err error) *models.ImportFailure {
	return &models.ImportFailure{Record: record, Position: position, Reason: err.Error()}
}
