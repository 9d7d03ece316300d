// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-import/models"
)

// EntityType names the kind of reference entity kept in a [ResolutionCache].
type EntityType int

const (
	EntityCategory EntityType = iota + 1
	EntityClient
	EntityTag
)

func (t EntityType) String() string {
	switch t {
	case EntityCategory:
		return "category"
	case EntityClient:
		return "client"
	case EntityTag:
		return "tag"
	default:
		return fmt.Sprintf("entity(%d)", int(t))
	}
}

// keyKind separates names from document-local ids of the same entity type.
type keyKind int

const (
	byName keyKind = iota
	byLocalID
)

type cacheKey struct {
	entity EntityType
	kind   keyKind
	key    string
}

// ResolutionCache maps external keys of reference entities to internal ids
// for the duration of a single run. It is not safe for concurrent use.
type ResolutionCache struct {
	ids map[cacheKey]int64
}

func NewResolutionCache() *ResolutionCache {
	return &ResolutionCache{ids: make(map[cacheKey]int64)}
}

// Lookup returns the id resolved for name. Names are case sensitive.
func (c *ResolutionCache) Lookup(t EntityType, name string) (int64, bool) {
	id, ok := c.ids[cacheKey{entity: t, kind: byName, key: name}]
	return id, ok
}

func (c *ResolutionCache) Store(t EntityType, name string, id int64) {
	c.ids[cacheKey{entity: t, kind: byName, key: name}] = id
}

// LookupLocal returns the internal id mapped to a document-local id.
func (c *ResolutionCache) LookupLocal(t EntityType, localID string) (int64, bool) {
	id, ok := c.ids[cacheKey{entity: t, kind: byLocalID, key: localID}]
	return id, ok
}

func (c *ResolutionCache) StoreLocal(t EntityType, localID string, id int64) {
	c.ids[cacheKey{entity: t, kind: byLocalID, key: localID}] = id
}

// Len returns the number of cached keys.
func (c *ResolutionCache) Len() int {
	return len(c.ids)
}

// Resolver resolves reference entities by name through a run's cache,
// creating them in the vault on first sight.
type Resolver struct {
	cache *ResolutionCache
	vault Vault
}

func NewResolver(cache *ResolutionCache, vault Vault) *Resolver {
	return &Resolver{cache: cache, vault: vault}
}

func (r *Resolver) ResolveCategory(ctx context.Context, category models.Category) (int64, error) {
	return r.resolve(ctx, EntityCategory, category.Name,
		func() (int64, error) { return r.vault.Categories.CreateCategory(ctx, category) },
		func() (int64, error) {
			found, err := r.vault.Categories.FindCategoryByName(ctx, category.Name)
			return found.CategoryID, err
		})
}

func (r *Resolver) ResolveClient(ctx context.Context, client models.Client) (int64, error) {
	return r.resolve(ctx, EntityClient, client.Name,
		func() (int64, error) { return r.vault.Clients.CreateClient(ctx, client) },
		func() (int64, error) {
			found, err := r.vault.Clients.FindClientByName(ctx, client.Name)
			return found.ClientID, err
		})
}

func (r *Resolver) ResolveTag(ctx context.Context, tag models.Tag) (int64, error) {
	return r.resolve(ctx, EntityTag, tag.Name,
		func() (int64, error) { return r.vault.Tags.CreateTag(ctx, tag) },
		func() (int64, error) {
			found, err := r.vault.Tags.FindTagByName(ctx, tag.Name)
			return found.TagID, err
		})
}

// resolve returns the cached id of name, or creates the entity. A duplicate
// reported by create falls back to a lookup by name; when the lookup finds
// nothing the duplicate error is returned. The create runs in its own
// savepoint so a refused insert leaves the transaction usable for the lookup.
func (r *Resolver) resolve(ctx context.Context, t EntityType, name string, create, find func() (int64, error)) (int64, error) {
	if id, ok := r.cache.Lookup(t, name); ok {
		return id, nil
	}

	var id int64
	err := confine(ctx, r.vault.Savepoints, func(context.Context) error {
		var createErr error
		id, createErr = create()
		return createErr
	})
	if errors.Is(err, models.ErrSavepoint) {
		return 0, fmt.Errorf("create %s %q: %w", t, name, err)
	}
	if errors.Is(err, models.ErrAlreadyExists) {
		existing, findErr := find()
		switch {
		case errors.Is(findErr, models.ErrNotFound):
			return 0, fmt.Errorf("%s %q: %w", t, name, err)
		case findErr != nil:
			return 0, fmt.Errorf("look up %s %q: %w", t, name, findErr)
		}
		id, err = existing, nil
	}
	if err != nil {
		return 0, fmt.Errorf("create %s %q: %w", t, name, err)
	}

	r.cache.Store(t, name, id)
	return id, nil
}
