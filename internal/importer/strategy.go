// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"io"

	"github.com/beevik/etree"
)

// Format names reported in [models.ImportResult.Format].
const (
	FormatCSV             = "csv"
	FormatNativeXML       = "native-xml"
	FormatKeePassXML      = "keepass-xml"
	FormatDirectoryGroups = "ldap-groups"
	FormatDirectoryUsers  = "ldap-users"
)

// Strategy is the closed set of import strategies. Only types of this
// package implement it; dispatch over it is a type switch.
type Strategy interface {
	Format() string
	strategy()
}

// CSVStrategy imports delimited text rows.
type CSVStrategy struct {
	Body io.Reader
}

// NativeXMLStrategy imports the vault's own export document.
type NativeXMLStrategy struct {
	Doc *etree.Document
}

// ForeignXMLStrategy imports a KeePass XML export.
type ForeignXMLStrategy struct {
	Doc *etree.Document
}

// DirectoryKind selects the objects a [DirectoryStrategy] imports.
type DirectoryKind int

const (
	DirectoryGroups DirectoryKind = iota + 1
	DirectoryUsers
)

// DirectoryStrategy imports groups or users from a directory server.
type DirectoryStrategy struct {
	Kind DirectoryKind
}

func (CSVStrategy) Format() string        { return FormatCSV }
func (NativeXMLStrategy) Format() string  { return FormatNativeXML }
func (ForeignXMLStrategy) Format() string { return FormatKeePassXML }

func (s DirectoryStrategy) Format() string {
	if s.Kind == DirectoryUsers {
		return FormatDirectoryUsers
	}
	return FormatDirectoryGroups
}

func (CSVStrategy) strategy()        {}
func (NativeXMLStrategy) strategy()  {}
func (ForeignXMLStrategy) strategy() {}
func (DirectoryStrategy) strategy()  {}
