// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package directory

import (
	"crypto/tls"

	"github.com/go-ldap/ldap/v3"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/directory_mock.go -package=mock

// Conn is the part of [ldap.Conn] used by the [Searcher].
type Conn interface {
	StartTLS(config *tls.Config) error
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	SearchWithPaging(searchRequest *ldap.SearchRequest, pagingSize uint32) (*ldap.SearchResult, error)
	Close() error
}
