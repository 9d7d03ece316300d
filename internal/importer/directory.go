// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/models"
)

// Built-in directory filters, used when the caller gives none.
const (
	DefaultGroupFilter = "(|(objectClass=groupOfNames)(objectClass=groupOfUniqueNames)(objectClass=group))"
	DefaultUserFilter  = "(|(objectClass=inetOrgPerson)(objectClass=person)(objectClass=simpleSecurityObject))"
)

const directoryNote = "Imported from LDAP"

func (r *run) importDirectory(ctx context.Context, kind DirectoryKind) error {
	if r.directory == nil {
		return ErrDirectoryNotConfigured
	}

	if kind == DirectoryUsers {
		err := r.vault.Users.CheckDefaults(ctx, r.opts.Directory.DefaultGroupID, r.opts.Directory.DefaultProfileID)
		switch {
		case errors.Is(err, models.ErrNotFound):
			return fmt.Errorf("%w: %w", ErrInvalidDirectoryDefaults, err)
		case err != nil:
			return fmt.Errorf("check directory defaults: %w", err)
		}
	}

	mapping := withDefaultMapping(r.opts.Directory.Mapping)

	filter, attributes := r.groupFilter, []string{mapping.GroupName}
	if kind == DirectoryUsers {
		filter, attributes = r.userFilter, []string{mapping.UserFullName, mapping.UserLogin, mapping.UserEmail}
	}
	if r.opts.Directory.Filter != "" {
		filter = r.opts.Directory.Filter
	}

	objects, err := r.directory.Search(ctx, filter, attributes)
	if err != nil {
		return fmt.Errorf("search directory: %w", err)
	}

	tally := &models.DirectoryTally{Seen: len(objects)}
	r.result.Directory = tally
	r.notifier.Notify(ctx, Event{
		Name:    EventDirectoryFound,
		Level:   LevelProgress,
		Details: map[string]any{"count": len(objects), "filter": filter},
	})

	for _, object := range objects {
		var name string
		if kind == DirectoryUsers {
			name, err = r.importDirectoryUser(ctx, object, mapping)
		} else {
			name, err = r.importDirectoryGroup(ctx, object, mapping)
		}

		switch {
		case errors.Is(err, ErrMissingAttribute):
			logger.FromContext(ctx).Debug().
				Str("func", "run.importDirectory").
				Str("dn", object.DN).
				Msg("object without a mapped attribute skipped")
		case err != nil:
			tally.Errored++
			r.directoryError(ctx, name, object.DN, err)
		default:
			tally.Synced++
			r.result.Imported++
			r.notifier.Notify(ctx, Event{
				Name:    EventDirectorySynced,
				Level:   LevelProgress,
				Details: map[string]any{"record": name, "dn": object.DN},
			})
		}
	}
	return nil
}

func (r *run) importDirectoryGroup(ctx context.Context, object models.DirectoryObject, mapping models.DirectoryAttributeMapping) (string, error) {
	name := strings.TrimSpace(object.Attribute(mapping.GroupName))
	if name == "" {
		return "", ErrMissingAttribute
	}

	err := confine(ctx, r.vault.Savepoints, func(ctx context.Context) error {
		_, err := r.vault.UserGroups.CreateUserGroup(ctx, models.UserGroup{Name: name, Description: directoryNote})
		return err
	})
	return name, err
}

func (r *run) importDirectoryUser(ctx context.Context, object models.DirectoryObject, mapping models.DirectoryAttributeMapping) (string, error) {
	fullName := strings.TrimSpace(object.Attribute(mapping.UserFullName))
	login := strings.TrimSpace(object.Attribute(mapping.UserLogin))
	if fullName == "" || login == "" {
		return "", ErrMissingAttribute
	}

	user := models.User{
		Name:          fullName,
		Login:         login,
		Email:         strings.TrimSpace(object.Attribute(mapping.UserEmail)),
		Notes:         directoryNote,
		UserGroupID:   r.opts.Directory.DefaultGroupID,
		UserProfileID: r.opts.Directory.DefaultProfileID,
		IsLDAP:        true,
	}
	err := confine(ctx, r.vault.Savepoints, func(ctx context.Context) error {
		_, err := r.vault.Users.CreateUser(ctx, user)
		return err
	})
	return login, err
}

func (r *run) directoryError(ctx context.Context, record, dn string, err error) {
	r.result.Skipped++
	r.result.Failures = append(r.result.Failures, models.ImportFailure{Record: record, Position: dn, Reason: err.Error()})

	logger.FromContext(ctx).Err(err).
		Str("func", "run.directoryError").
		Str("record", record).
		Str("dn", dn).
		Msg("directory object not imported")

	r.notifier.Notify(ctx, Event{
		Name:    EventDirectoryError,
		Level:   LevelError,
		Details: map[string]any{"record": record, "dn": dn, "reason": err.Error()},
	})
}

func withDefaultMapping(m models.DirectoryAttributeMapping) models.DirectoryAttributeMapping {
	defaults := models.DefaultDirectoryAttributeMapping()
	if m.GroupName == "" {
		m.GroupName = defaults.GroupName
	}
	if m.UserFullName == "" {
		m.UserFullName = defaults.UserFullName
	}
	if m.UserLogin == "" {
		m.UserLogin = defaults.UserLogin
	}
	if m.UserEmail == "" {
		m.UserEmail = defaults.UserEmail
	}
	return m
}
