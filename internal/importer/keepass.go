// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-import/models"
	"github.com/beevik/etree"
)

// keePassName names the synthetic client of KeePass imports, the
// description of their categories and the category of ungrouped entries.
const keePassName = "KeePass"

type keePassGroup struct {
	name    string
	entries []*etree.Element
}

// importKeePass imports every Entry outside a History element. Entries are
// grouped by their nearest enclosing group so each group resolves its
// category once.
func (r *run) importKeePass(ctx context.Context, doc *etree.Document) error {
	clientID, err := r.resolver.ResolveClient(ctx, models.Client{Name: keePassName, Description: keePassName})
	if err != nil {
		return fmt.Errorf("resolve %s client: %w", keePassName, err)
	}

	var groups []*keePassGroup
	byName := make(map[string]*keePassGroup)
	for _, entry := range doc.FindElements("//Entry") {
		if inHistory(entry) {
			continue
		}

		name := groupName(entry)
		group, ok := byName[name]
		if !ok {
			group = &keePassGroup{name: name}
			byName[name] = group
			groups = append(groups, group)
		}
		group.entries = append(group.entries, entry)
	}

	for _, group := range groups {
		r.importKeePassGroup(ctx, group, clientID)
	}
	return nil
}

func (r *run) importKeePassGroup(ctx context.Context, group *keePassGroup, clientID int64) {
	categoryID, err := r.resolver.ResolveCategory(ctx, models.Category{Name: group.name, Description: keePassName})

	for i, entry := range group.entries {
		fields := entryFields(entry)
		position := fmt.Sprintf("%s/Entry %d", group.name, i+1)

		if err != nil {
			r.skip(ctx, failure(fields["Title"], position, err))
			continue
		}

		account := models.Account{
			Name:       fields["Title"],
			Login:      fields["UserName"],
			Password:   fields["Password"],
			URL:        fields["URL"],
			Notes:      fields["Notes"],
			CategoryID: categoryID,
			ClientID:   clientID,
		}
		if f := r.submit(ctx, account, position); f != nil {
			r.skip(ctx, f)
		}
	}
}

func inHistory(el *etree.Element) bool {
	for p := el.Parent(); p != nil; p = p.Parent() {
		if p.Tag == "History" {
			return true
		}
	}
	return false
}

// groupName returns the name of the nearest enclosing Group, or the
// default category name for ungrouped entries.
func groupName(el *etree.Element) string {
	for p := el.Parent(); p != nil; p = p.Parent() {
		if p.Tag != "Group" {
			continue
		}
		if name := strings.TrimSpace(childText(p, "Name")); name != "" {
			return name
		}
		break
	}
	return keePassName
}

// entryFields collects the String Key/Value pairs of an entry.
func entryFields(entry *etree.Element) map[string]string {
	fields := make(map[string]string)
	for _, s := range entry.SelectElements("String") {
		fields[childText(s, "Key")] = childText(s, "Value")
	}
	return fields
}
