// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"context"
	"fmt"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/internal/utils"
	"github.com/MKhiriev/go-vault-import/models"
)

// Dependencies are the collaborators of an [ImportService]. Directory may be
// nil when directory imports are not configured; Notifier defaults to
// [LogNotifier].
type Dependencies struct {
	Transactor  Transactor
	Decrypter   Decrypter
	Passphrases PassphraseChecker
	Directory   DirectorySearcher
	Notifier    Notifier
}

// Settings are the installation-wide parameters of an [ImportService].
type Settings struct {
	// IntegrityKey keys the integrity check of native documents imported
	// without an export passphrase.
	IntegrityKey string

	// GroupFilter and UserFilter replace the built-in directory filters.
	GroupFilter string
	UserFilter  string

	// Directory fills the directory options a caller leaves empty.
	Directory models.DirectoryOptions
}

type importService struct {
	transactor   Transactor
	decrypter    Decrypter
	checker      PassphraseChecker
	directory    DirectorySearcher
	notifier     Notifier
	integrityKey string
	groupFilter  string
	userFilter   string
	directoryDef models.DirectoryOptions
	newID        func() string
	logger       *logger.Logger
}

func NewImportService(deps Dependencies, settings Settings, logger *logger.Logger) ImportService {
	s := &importService{
		transactor:   deps.Transactor,
		decrypter:    deps.Decrypter,
		checker:      deps.Passphrases,
		directory:    deps.Directory,
		notifier:     deps.Notifier,
		integrityKey: settings.IntegrityKey,
		groupFilter:  settings.GroupFilter,
		userFilter:   settings.UserFilter,
		directoryDef: settings.Directory,
		newID:        utils.NewImportID,
		logger:       logger,
	}
	if s.notifier == nil {
		s.notifier = NewLogNotifier()
	}
	if s.groupFilter == "" {
		s.groupFilter = DefaultGroupFilter
	}
	if s.userFilter == "" {
		s.userFilter = DefaultUserFilter
	}
	return s
}

func (s *importService) ImportFile(ctx context.Context, file FileHandle, opts models.ImportOptions) (models.ImportResult, error) {
	return s.execute(ctx, file.Name, opts, func(ctx context.Context) (Strategy, error) {
		strategy, err := Sniff(file)
		if err != nil {
			return nil, err
		}
		s.notifier.Notify(ctx, Event{
			Name:    EventFormatDetected,
			Level:   LevelProgress,
			Details: map[string]any{"format": strategy.Format(), "file": file.Name},
		})
		return strategy, nil
	})
}

func (s *importService) ImportDirectoryGroups(ctx context.Context, opts models.ImportOptions) (models.ImportResult, error) {
	opts, err := s.withDirectoryDefaults(opts)
	if err != nil {
		return models.ImportResult{}, err
	}
	return s.execute(ctx, FormatDirectoryGroups, opts, func(context.Context) (Strategy, error) {
		return DirectoryStrategy{Kind: DirectoryGroups}, nil
	})
}

func (s *importService) ImportDirectoryUsers(ctx context.Context, opts models.ImportOptions) (models.ImportResult, error) {
	opts, err := s.withDirectoryDefaults(opts)
	if err != nil {
		return models.ImportResult{}, err
	}
	return s.execute(ctx, FormatDirectoryUsers, opts, func(context.Context) (Strategy, error) {
		return DirectoryStrategy{Kind: DirectoryUsers}, nil
	})
}

// withDirectoryDefaults fills empty directory options from the installation
// defaults. Options set by the caller win.
func (s *importService) withDirectoryDefaults(opts models.ImportOptions) (models.ImportOptions, error) {
	if err := mergo.Merge(&opts.Directory, s.directoryDef); err != nil {
		return opts, fmt.Errorf("merge directory defaults: %w", err)
	}
	return opts, nil
}

// execute opens the run transaction, selects the strategy inside it and
// dispatches. Any returned error rolls the whole run back.
func (s *importService) execute(ctx context.Context, source string, opts models.ImportOptions, selectStrategy func(context.Context) (Strategy, error)) (models.ImportResult, error) {
	result := models.ImportResult{ID: s.newID(), StartedAt: time.Now().UTC()}

	log := s.logger.WithStr("import_id", result.ID)
	ctx = log.WithContext(ctx)

	s.notifier.Notify(ctx, Event{
		Name:    EventRunStarted,
		Level:   LevelProgress,
		Details: map[string]any{"source": source},
	})

	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, vault Vault) error {
		strategy, err := selectStrategy(ctx)
		if err != nil {
			return err
		}
		result.Format = strategy.Format()

		r := s.newRun(vault, opts, &result)
		if err := s.dispatch(ctx, r, strategy); err != nil {
			return err
		}
		// a lost savepoint leaves the transaction in an unknown state
		return r.scope.broken
	})
	result.FinishedAt = time.Now().UTC()

	if err != nil {
		log.Err(err).Str("func", "importService.execute").Str("source", source).Msg("import failed, nothing was committed")
		return models.ImportResult{}, err
	}

	s.notifier.Notify(ctx, Event{
		Name:  EventRunFinished,
		Level: LevelProgress,
		Details: map[string]any{
			"format":   result.Format,
			"imported": result.Imported,
			"skipped":  result.Skipped,
			"warnings": len(result.Warnings),
		},
	})
	return result, nil
}

func (s *importService) dispatch(ctx context.Context, r *run, strategy Strategy) error {
	switch st := strategy.(type) {
	case CSVStrategy:
		return r.importCSV(ctx, st.Body)
	case NativeXMLStrategy:
		return r.importNative(ctx, st.Doc)
	case ForeignXMLStrategy:
		return r.importKeePass(ctx, st.Doc)
	case DirectoryStrategy:
		return r.importDirectory(ctx, st.Kind)
	default:
		return fmt.Errorf("%w: strategy %T", ErrUnsupportedFormat, strategy)
	}
}
