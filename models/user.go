// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a vault user. Users imported from a directory carry IsLDAP and
// have no local password.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	Email string `json:"email"`
	Notes string `json:"notes"`

	// UserGroupID is the main group of the user.
	UserGroupID int64 `json:"user_group_id"`

	// UserProfileID selects the permission profile applied to the user.
	UserProfileID int64 `json:"user_profile_id"`

	// IsLDAP marks users whose identity is sourced from a directory.
	IsLDAP bool `json:"is_ldap"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserGroup is a named set of users sharing account permissions.
type UserGroup struct {
	UserGroupID int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
