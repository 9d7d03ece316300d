// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"bytes"
	"context"
	"strings"

	"github.com/MKhiriev/go-vault-import/internal/utils"
	"github.com/beevik/etree"
)

// CanonicalBody serializes every child of root except Meta, in document
// order and without indentation. It is the input of the document hash.
func CanonicalBody(root *etree.Element) []byte {
	var buf bytes.Buffer
	for _, child := range root.ChildElements() {
		if child.Tag == "Meta" {
			continue
		}

		doc := etree.NewDocument()
		doc.SetRoot(child.Copy())
		doc.Unindent()
		_, _ = doc.WriteTo(&buf)
	}
	return buf.Bytes()
}

// SignDocument stores the hash of root's canonical body in Meta/Hash and
// its signature under key in the sign attribute.
func SignDocument(root *etree.Element, key string) {
	meta := root.SelectElement("Meta")
	if meta == nil {
		meta = root.CreateElement("Meta")
	}
	hashEl := meta.SelectElement("Hash")
	if hashEl == nil {
		hashEl = meta.CreateElement("Hash")
	}

	hash := utils.Digest(CanonicalBody(root))
	hashEl.SetText(hash)
	hashEl.CreateAttr("sign", utils.HashString(hash, key))
}

// verifyIntegrity compares the document hash with the decrypted tree. A
// mismatch is reported as a warning and the import goes on.
func (r *run) verifyIntegrity(ctx context.Context, root *etree.Element) {
	hashEl := root.FindElement("Meta/Hash")
	if hashEl == nil {
		r.warn(ctx, "document carries no integrity hash")
		return
	}

	hash := utils.Digest(CanonicalBody(root))
	if !strings.EqualFold(strings.TrimSpace(hashEl.Text()), hash) {
		r.warn(ctx, "integrity check failed: document hash does not match its content")
		return
	}

	key := r.opts.ExportPassphrase
	if key == "" {
		key = r.integrityKey
	}
	if !utils.VerifyHashString(hash, key, hashEl.SelectAttrValue("sign", "")) {
		r.warn(ctx, "integrity check failed: document signature does not match")
	}
}
