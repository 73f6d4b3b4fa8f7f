/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package store

import (
	"context"
	"time"

	"github.com/pairbridge/tablestore/models"
)

// Entity is implemented by any record the accessor can persist. An entity is
// uniquely identified within a table by its (partition key, row key) pair.
// The store stamps an UpdatedAt attribute on every write; entities that want
// to read it back declare a field bound to that attribute.
type Entity interface {
	PartitionKey() string
	RowKey() string
}

// Accessor is a typed, table-scoped convenience layer over a
// partition/row-keyed store. An accessor is bound to one table and one
// entity shape at construction and holds no cross-call mutable state, so a
// single instance is safe to share across concurrent callers.
type Accessor[T Entity] interface {
	// CreateOrUpdate replaces the entity wholesale if present, inserts it otherwise.
	CreateOrUpdate(ctx context.Context, entity T) error

	// InsertOrMerge merges the entity field-wise if present, inserts it otherwise.
	InsertOrMerge(ctx context.Context, entity T) error

	// Delete removes the entity addressed by the entity's keys. It returns an
	// error matching errors.ErrNotFound when no entity exists at those keys.
	Delete(ctx context.Context, entity T) error

	// GetByKeys returns the entity at (partitionKey, rowKey), or (nil, nil)
	// when absent.
	GetByKeys(ctx context.Context, partitionKey, rowKey string) (*T, error)

	// GetWithFilter returns all entities in the resolved partition matching
	// the filter. A blank partition resolves to the accessor default.
	GetWithFilter(ctx context.Context, filter models.Filter, partition string) ([]T, error)

	// GetAll returns all entities in the resolved partition, capped at count
	// when count > 0.
	GetAll(ctx context.Context, partition string, count int) ([]T, error)

	// GetByRowKeyFilter returns entities in the default partition matching
	// both the row key and the filter, AND-combined.
	GetByRowKeyFilter(ctx context.Context, rowKey string, filter models.Filter) ([]T, error)

	// GetAllModifiedBefore returns entities in the default partition whose
	// last-modified stamp is at or before cutoff.
	GetAllModifiedBefore(ctx context.Context, cutoff time.Time) ([]T, error)

	// StreamAll lazily produces entity pages, one per store segment. The
	// channel closes when the continuation token chain ends, the count cap is
	// reached, ctx is cancelled between segments, or a segment fails (the
	// failure surfaces as the final page's Err). Each call starts a fresh scan.
	StreamAll(ctx context.Context, partition string, count int, opts ...models.StreamOption) <-chan models.Page[T]

	// BatchUpsert insert-or-merges all entities in groups of at most 100,
	// one store round-trip per group, groups issued in input order. A failed
	// group leaves earlier groups committed; there is no rollback.
	BatchUpsert(ctx context.Context, entities []T) error

	// BatchDelete deletes all entities with the same batching discipline as
	// BatchUpsert.
	BatchDelete(ctx context.Context, entities []T) error
}
