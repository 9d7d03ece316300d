// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-vault-import/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of an entity.
	FieldName = "name"

	// FieldLogin targets the unique login of a user, or the login stored
	// with an account.
	FieldLogin = "login"

	// FieldEmail targets the optional mail address of a user.
	FieldEmail = "email"

	// FieldCategoryID targets the resolved category reference of an account.
	FieldCategoryID = "category_id"

	// FieldClientID targets the resolved client reference of an account.
	FieldClientID = "client_id"

	// FieldTagIDs targets the resolved tag references of an account.
	FieldTagIDs = "tag_ids"

	// FieldPassword checks that key material always comes with a password.
	FieldPassword = "password"

	// FieldOwner targets the owning user and group ids.
	FieldOwner = "owner"
)

// maxNameLength matches the VARCHAR(255) name, login and email columns of
// the vault schema.
const maxNameLength = 255

// VaultValidator implements [Validator] for the records created by imports:
// accounts, categories, clients, tags, user groups and users.
type VaultValidator struct {
}

// NewVaultValidator constructs a new VaultValidator.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches validation to the type-specific method. Both values and
// pointers are accepted.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		return v.validateAccount(ctx, *value, fields...)

	case models.Category:
		return validateName(value.Name, fields...)
	case *models.Category:
		return validateName(value.Name, fields...)

	case models.Client:
		return validateName(value.Name, fields...)
	case *models.Client:
		return validateName(value.Name, fields...)

	case models.Tag:
		return validateName(value.Name, fields...)
	case *models.Tag:
		return validateName(value.Name, fields...)

	case models.UserGroup:
		return validateName(value.Name, fields...)
	case *models.UserGroup:
		return validateName(value.Name, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateAccount(_ context.Context, account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldLogin, FieldCategoryID, FieldClientID, FieldTagIDs, FieldPassword, FieldOwner}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := checkName(account.Name); err != nil {
				return err
			}
		case FieldLogin:
			if tooLong(account.Login) {
				return ErrLoginTooLong
			}
		case FieldCategoryID:
			if account.CategoryID <= 0 {
				return ErrUnresolvedCategory
			}
		case FieldClientID:
			if account.ClientID <= 0 {
				return ErrUnresolvedClient
			}
		case FieldTagIDs:
			for i, id := range account.TagIDs {
				if id <= 0 {
					return fmt.Errorf("%w at index %d", ErrInvalidTagID, i)
				}
			}
		case FieldPassword:
			if account.Key != "" && account.Password == "" {
				return ErrKeyWithoutPassword
			}
		case FieldOwner:
			if account.UserID < 0 || account.UserGroupID < 0 {
				return ErrInvalidOwnerID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldLogin, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := checkName(user.Name); err != nil {
				return err
			}
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrEmptyLogin
			}
			if tooLong(user.Login) {
				return ErrLoginTooLong
			}
		case FieldEmail:
			if tooLong(user.Email) {
				return ErrEmailTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string, fields ...string) error {
	for _, f := range fields {
		if f != FieldName {
			return ErrUnknownField
		}
	}
	return checkName(name)
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if tooLong(name) {
		return ErrNameTooLong
	}
	return nil
}

func tooLong(s string) bool {
	return utf8.RuneCountInString(s) > maxNameLength
}
