// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is an access token for the import API. The subject claim holds the
// decimal id of the user that imports are attributed to.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact form sent as "Authorization: Bearer ...".
	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}
