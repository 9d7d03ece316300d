// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryObject_Attribute(t *testing.T) {
	o := DirectoryObject{Attributes: map[string][]string{
		"sAMAccountName": {"jdoe"},
		"mail":           {"first@corp.example", "second@corp.example"},
		"description":    {},
	}}

	tests := []struct {
		name string
		want string
	}{
		{name: "sAMAccountName", want: "jdoe"},
		{name: "samaccountname", want: "jdoe"},
		{name: "SAMACCOUNTNAME", want: "jdoe"},
		{name: "mail", want: "first@corp.example"},
		{name: "description", want: ""},
		{name: "telephoneNumber", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, o.Attribute(tt.name))
		})
	}
}
