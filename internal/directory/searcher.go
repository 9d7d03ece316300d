// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package directory

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"github.com/go-ldap/ldap/v3"

	"github.com/MKhiriev/go-vault-import/internal/config"
	"github.com/MKhiriev/go-vault-import/internal/importer"
	"github.com/MKhiriev/go-vault-import/internal/logger"
	"github.com/MKhiriev/go-vault-import/models"
)

const dialTimeout = 10 * time.Second

var _ importer.DirectorySearcher = (*Searcher)(nil)

// Dialer opens a connection to the directory server at url.
type Dialer func(ctx context.Context, url string, tlsConfig *tls.Config) (Conn, error)

// Searcher runs subtree searches under the configured base DN. Every search
// uses its own connection.
type Searcher struct {
	cfg  config.LDAP
	dial Dialer

	logger *logger.Logger
}

// NewSearcher returns a Searcher dialing with go-ldap.
func NewSearcher(cfg config.LDAP, logger *logger.Logger) *Searcher {
	return NewSearcherWithDialer(cfg, DialLDAP, logger)
}

func NewSearcherWithDialer(cfg config.LDAP, dial Dialer, logger *logger.Logger) *Searcher {
	return &Searcher{cfg: cfg, dial: dial, logger: logger}
}

// DialLDAP connects with [ldap.DialURL]. ldaps:// URLs use tlsConfig.
func DialLDAP(ctx context.Context, url string, tlsConfig *tls.Config) (Conn, error) {
	dialer := &net.Dialer{Timeout: dialTimeout}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}

	conn, err := ldap.DialURL(url, ldap.DialWithDialer(dialer), ldap.DialWithTLSConfig(tlsConfig))
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Search returns the objects under the base DN matching filter, with the
// requested attributes only.
func (s *Searcher) Search(ctx context.Context, filter string, attributes []string) ([]models.DirectoryObject, error) {
	log := logger.FromContext(ctx)

	if s.cfg.URL == "" || s.cfg.BaseDN == "" {
		return nil, ErrNotConfigured
	}
	if _, err := ldap.CompileFilter(filter); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidFilter, filter, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{InsecureSkipVerify: s.cfg.InsecureSkipVerify} //nolint:gosec // opt-in for lab directories

	conn, err := s.dial(ctx, s.cfg.URL, tlsConfig)
	if err != nil {
		log.Err(err).Str("func", "Searcher.Search").Str("url", s.cfg.URL).Msg("dial failed")
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Str("func", "Searcher.Search").Msg("closing directory connection")
		}
	}()

	if s.cfg.StartTLS {
		if err = conn.StartTLS(tlsConfig); err != nil {
			return nil, fmt.Errorf("%w: start tls: %w", ErrConnect, err)
		}
	}

	if s.cfg.BindDN != "" {
		if err = conn.Bind(s.cfg.BindDN, s.cfg.BindPassword); err != nil {
			log.Err(err).Str("func", "Searcher.Search").Str("bind_dn", s.cfg.BindDN).Msg("bind failed")
			return nil, fmt.Errorf("%w: %w", ErrBind, err)
		}
	}

	request := ldap.NewSearchRequest(
		s.cfg.BaseDN,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 0, 0, false,
		filter,
		attributes,
		nil,
	)

	var result *ldap.SearchResult
	if s.cfg.PageSize > 0 {
		result, err = conn.SearchWithPaging(request, s.cfg.PageSize)
	} else {
		result, err = conn.Search(request)
	}
	if err != nil {
		log.Err(err).Str("func", "Searcher.Search").Str("filter", filter).Msg("search failed")
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}

	log.Debug().Str("func", "Searcher.Search").Int("entries", len(result.Entries)).Msg("directory searched")
	return toObjects(result.Entries), nil
}

func toObjects(entries []*ldap.Entry) []models.DirectoryObject {
	objects := make([]models.DirectoryObject, 0, len(entries))
	for _, entry := range entries {
		object := models.DirectoryObject{DN: entry.DN, Attributes: make(map[string][]string, len(entry.Attributes))}
		for _, attr := range entry.Attributes {
			object.Attributes[attr.Name] = attr.Values
		}
		objects = append(objects, object)
	}
	return objects
}
