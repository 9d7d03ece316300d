// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-vault-import/internal/crypto"
	"github.com/MKhiriev/go-vault-import/models"
	"github.com/beevik/etree"
)

// legacyClientsVersion is the first version naming clients "Clients".
// Older documents use "Customers" with "customerId" references.
const legacyClientsVersion = 300

// clientSection names the client elements of a document version.
type clientSection struct {
	section, element, reference string
}

func clientSectionOf(version int) clientSection {
	if version < legacyClientsVersion {
		return clientSection{section: "Customers", element: "Customer", reference: "customerId"}
	}
	return clientSection{section: "Clients", element: "Client", reference: "clientId"}
}

// importNative imports a native export document: version, decryption,
// integrity, reference sections, then accounts.
func (r *run) importNative(ctx context.Context, doc *etree.Document) error {
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidFormat)
	}

	version, err := documentVersion(root)
	if err != nil {
		return err
	}

	if encrypted := root.SelectElement("Encrypted"); encrypted != nil {
		if root, err = r.decryptDocument(ctx, root, encrypted, version); err != nil {
			return err
		}
	}

	r.verifyIntegrity(ctx, root)

	clients := clientSectionOf(version)
	if err = r.importNativeSections(ctx, root, clients); err != nil {
		return err
	}

	return r.importNativeAccounts(ctx, root, version, clients)
}

func documentVersion(root *etree.Element) (int, error) {
	marker := root.FindElement("Meta/Version")
	if marker == nil {
		return 0, fmt.Errorf("%w: missing version", ErrInvalidFormat)
	}

	version, err := ParseVersion(marker.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return version, nil
}

// ParseVersion converts a dotted version to its comparable integer form:
// "3.1.0" and "3.1" give 310. Minor and patch saturate at 9 so they never
// carry into the next digit: "3.1.12" gives 319 and stays below 3.2.0.
// A first component of three or more digits is already in integer form
// ("320.2006" gives 320).
func ParseVersion(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty version")
	}

	parts := strings.Split(s, ".")
	nums := make([]int, 0, 3)
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("malformed version %q", s)
		}
		nums = append(nums, n)
	}

	if len(parts[0]) >= 3 {
		return nums[0], nil
	}

	weights := []int{100, 10, 1}
	version := 0
	for i := 0; i < len(nums) && i < len(weights); i++ {
		n := nums[i]
		if i > 0 {
			n = min(n, 9)
		}
		version += n * weights[i]
	}
	return version, nil
}

// decryptDocument decrypts every Data blob of the Encrypted container and
// returns a new root made of the original children without the container,
// followed by the decrypted fragments.
func (r *run) decryptDocument(ctx context.Context, root, encrypted *etree.Element, version int) (*etree.Element, error) {
	passphrase := r.opts.ExportPassphrase
	if passphrase == "" {
		return nil, ErrMissingPassphrase
	}

	if hash := encrypted.SelectAttrValue("hash", ""); hash != "" && !r.checker.Matches(passphrase, hash) {
		return nil, ErrWrongPassphrase
	}

	blobs := encrypted.SelectElements("Data")
	var fragments []*etree.Element
	failed := 0
	for i, blob := range blobs {
		if hash := blob.SelectAttrValue("hash", ""); hash != "" && !r.checker.Matches(passphrase, hash) {
			return nil, ErrWrongPassphrase
		}

		plain, err := r.decrypter.Decrypt(version, strings.TrimSpace(blob.Text()), blob.SelectAttrValue("key", ""), passphrase)
		if errors.Is(err, crypto.ErrUnsupportedVersion) {
			return nil, fmt.Errorf("%w: %w", ErrOldVersion, err)
		}
		if err != nil {
			failed++
			r.warn(ctx, fmt.Sprintf("encrypted block %d skipped: %v", i+1, err))
			continue
		}

		fragment := etree.NewDocument()
		if err = fragment.ReadFromBytes(plain); err != nil {
			return nil, fmt.Errorf("%w: encrypted block %d: %w", ErrWrongPassphrase, i+1, err)
		}
		elements := fragment.ChildElements()
		if len(elements) == 0 {
			return nil, fmt.Errorf("%w: encrypted block %d holds no data", ErrWrongPassphrase, i+1)
		}
		fragments = append(fragments, elements...)
	}

	if len(blobs) > 0 && failed == len(blobs) {
		return nil, fmt.Errorf("%w: no encrypted block could be decrypted", ErrWrongPassphrase)
	}

	rebuilt := etree.NewElement(root.Tag)
	rebuilt.Space = root.Space
	rebuilt.Attr = append(rebuilt.Attr, root.Attr...)
	for _, child := range root.ChildElements() {
		if child == encrypted {
			continue
		}
		rebuilt.AddChild(child.Copy())
	}
	for _, fragment := range fragments {
		rebuilt.AddChild(fragment.Copy())
	}

	doc := etree.NewDocument()
	doc.SetRoot(rebuilt)
	return doc.Root(), nil
}

func (r *run) importNativeSections(ctx context.Context, root *etree.Element, clients clientSection) error {
	categories := root.SelectElement("Categories")
	if categories == nil {
		return fmt.Errorf("%w: missing Categories section", ErrInvalidFormat)
	}
	clientList := root.SelectElement(clients.section)
	if clientList == nil {
		return fmt.Errorf("%w: missing %s section", ErrInvalidFormat, clients.section)
	}
	if root.SelectElement("Accounts") == nil {
		return fmt.Errorf("%w: missing Accounts section", ErrInvalidFormat)
	}

	for _, el := range categories.SelectElements("Category") {
		category := models.Category{Name: childText(el, "name"), Description: childText(el, "description")}
		r.importNativeReference(ctx, EntityCategory, el, category.Name, func() (int64, error) {
			return r.resolver.ResolveCategory(ctx, category)
		})
	}

	for _, el := range clientList.SelectElements(clients.element) {
		client := models.Client{Name: childText(el, "name"), Description: childText(el, "description")}
		r.importNativeReference(ctx, EntityClient, el, client.Name, func() (int64, error) {
			return r.resolver.ResolveClient(ctx, client)
		})
	}

	if tags := root.SelectElement("Tags"); tags != nil {
		for _, el := range tags.SelectElements("Tag") {
			tag := models.Tag{Name: childText(el, "name")}
			r.importNativeReference(ctx, EntityTag, el, tag.Name, func() (int64, error) {
				return r.resolver.ResolveTag(ctx, tag)
			})
		}
	}

	return nil
}

// importNativeReference resolves one section entity and maps its
// document-local id to the resolved id. Failures skip the entity only.
func (r *run) importNativeReference(ctx context.Context, t EntityType, el *etree.Element, name string, resolve func() (int64, error)) {
	localID := el.SelectAttrValue("id", "")
	position := fmt.Sprintf("%s[id=%s]", el.GetPath(), localID)

	if strings.TrimSpace(name) == "" {
		r.skip(ctx, failure(name, position, fmt.Errorf("%s without a name", t)))
		return
	}

	id, err := resolve()
	if err != nil {
		r.skip(ctx, failure(name, position, err))
		return
	}
	r.cache.StoreLocal(t, localID, id)
}

func (r *run) importNativeAccounts(ctx context.Context, root *etree.Element, version int, clients clientSection) error {
	for _, el := range root.SelectElement("Accounts").SelectElements("Account") {
		f, err := r.importNativeAccount(ctx, el, version, clients)
		if err != nil {
			return err
		}
		if f != nil {
			r.skip(ctx, f)
		}
	}
	return nil
}

// importNativeAccount returns a failure for a skipped account and an error
// when the whole run must stop.
func (r *run) importNativeAccount(ctx context.Context, el *etree.Element, version int, clients clientSection) (*models.ImportFailure, error) {
	name := childText(el, "name")
	position := fmt.Sprintf("Accounts/Account[id=%s]", el.SelectAttrValue("id", ""))

	categoryRef := strings.TrimSpace(childText(el, "categoryId"))
	categoryID, ok := r.cache.LookupLocal(EntityCategory, categoryRef)
	if !ok {
		return failure(name, position, fmt.Errorf("%w: category %q", ErrUnresolvedReference, categoryRef)), nil
	}

	clientRef := strings.TrimSpace(childText(el, clients.reference))
	clientID, ok := r.cache.LookupLocal(EntityClient, clientRef)
	if !ok {
		return failure(name, position, fmt.Errorf("%w: client %q", ErrUnresolvedReference, clientRef)), nil
	}

	var tagIDs []int64
	for _, tag := range el.FindElements("tags/tag") {
		tagRef := tag.SelectAttrValue("id", "")
		tagID, found := r.cache.LookupLocal(EntityTag, tagRef)
		if !found {
			return failure(name, position, fmt.Errorf("%w: tag %q", ErrUnresolvedReference, tagRef)), nil
		}
		tagIDs = append(tagIDs, tagID)
	}

	account := models.Account{
		Name:       name,
		Login:      childText(el, "login"),
		URL:        childText(el, "url"),
		Notes:      childText(el, "notes"),
		Password:   strings.TrimSpace(childText(el, "pass")),
		Key:        strings.TrimSpace(childText(el, "key")),
		CategoryID: categoryID,
		ClientID:   clientID,
		TagIDs:     tagIDs,
	}

	account, f, err := r.reencrypt(ctx, account, version, position)
	if err != nil || f != nil {
		return f, err
	}

	return r.submit(ctx, account, position), nil
}

// reencrypt turns an exported password back into plaintext so the vault
// wraps it under its live master key. It applies only when an export
// passphrase is known and the run's master passphrase does not already
// match the vault's master key.
func (r *run) reencrypt(ctx context.Context, account models.Account, version int, position string) (models.Account, *models.ImportFailure, error) {
	if account.Password == "" || r.opts.ExportPassphrase == "" {
		return account, nil, nil
	}

	matches, err := r.masterKeyMatches(ctx)
	if err != nil {
		return account, nil, err
	}
	if matches {
		return account, nil, nil
	}

	if version < crypto.MinSupportedVersion {
		return account, nil, ErrOldVersion
	}

	plain, err := r.decrypter.Decrypt(version, account.Password, account.Key, r.opts.ExportPassphrase)
	if errors.Is(err, crypto.ErrUnsupportedVersion) {
		return account, nil, fmt.Errorf("%w: %w", ErrOldVersion, err)
	}
	if err != nil {
		return account, failure(account.Name, position, fmt.Errorf("decrypt password: %w", err)), nil
	}

	account.Password = string(plain)
	account.Key = ""
	return account, nil, nil
}

func (r *run) masterKeyMatches(ctx context.Context) (bool, error) {
	if r.masterChecked {
		return r.masterMatches, nil
	}

	hash, err := r.vault.MasterKey.CurrentMasterKeyHash(ctx)
	switch {
	case errors.Is(err, models.ErrNotFound):
		hash = ""
	case err != nil:
		return false, fmt.Errorf("read master key hash: %w", err)
	}

	r.masterChecked = true
	r.masterMatches = hash != "" && r.opts.MasterPassphrase != "" && r.checker.Matches(r.opts.MasterPassphrase, hash)
	return r.masterMatches, nil
}

func childText(el *etree.Element, tag string) string {
	if child := el.SelectElement(tag); child != nil {
		return child.Text()
	}
	return ""
}
