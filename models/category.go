// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category groups accounts by purpose.
type Category struct {
	CategoryID  int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Client is the customer an account belongs to.
type Client struct {
	ClientID    int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Tag is a free-form label attached to accounts.
type Tag struct {
	TagID int64  `json:"id"`
	Name  string `json:"name"`
}
