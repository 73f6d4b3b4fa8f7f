/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

// Package memory provides an in-memory implementation of store.Accessor for
// testing accessor callers.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	apperrors "github.com/pairbridge/tablestore/errors"
	"github.com/pairbridge/tablestore/models"
	"github.com/pairbridge/tablestore/store"
)

// MatchFunc decides whether an entity matches an opaque filter. The in-memory
// store cannot evaluate store expression syntax, so tests supply the
// predicate themselves.
type MatchFunc[T store.Entity] func(entity T, filter models.Filter) bool

type record[T store.Entity] struct {
	entity    T
	updatedAt time.Time
}

// Store is an in-memory store.Accessor[T]. Entities are grouped by partition
// and ordered by row key so scans are deterministic.
type Store[T store.Entity] struct {
	mu               sync.RWMutex
	defaultPartition string
	pageSize         int
	match            MatchFunc[T]
	failWith         error
	data             map[string]map[string]record[T]
	now              func() time.Time
}

// New creates an empty in-memory store with the given default partition.
func New[T store.Entity](defaultPartition string) *Store[T] {
	return &Store[T]{
		defaultPartition: defaultPartition,
		pageSize:         50,
		data:             make(map[string]map[string]record[T]),
		now:              time.Now,
	}
}

// WithPageSize sets how many entities a streamed page carries.
func (s *Store[T]) WithPageSize(n int) *Store[T] {
	s.pageSize = n
	return s
}

// WithMatchFunc sets the predicate used to evaluate non-blank filters.
// Without one, non-blank filters match every entity.
func (s *Store[T]) WithMatchFunc(f MatchFunc[T]) *Store[T] {
	s.match = f
	return s
}

// WithError makes every operation return err.
func (s *Store[T]) WithError(err error) *Store[T] {
	s.failWith = err
	return s
}

func (s *Store[T]) CreateOrUpdate(_ context.Context, entity T) error {
	return s.put(entity)
}

// InsertOrMerge behaves like CreateOrUpdate here: in-memory records are whole
// values, so a merge and a replace are indistinguishable.
func (s *Store[T]) InsertOrMerge(_ context.Context, entity T) error {
	return s.put(entity)
}

func (s *Store[T]) put(entity T) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	partition := entity.PartitionKey()
	rows, ok := s.data[partition]
	if !ok {
		rows = make(map[string]record[T])
		s.data[partition] = rows
	}
	rows[entity.RowKey()] = record[T]{entity: entity, updatedAt: s.now()}
	return nil
}

func (s *Store[T]) Delete(_ context.Context, entity T) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	partition, row := entity.PartitionKey(), entity.RowKey()
	rows, ok := s.data[partition]
	if !ok {
		return apperrors.NewKeyNotFoundError(partition, row)
	}
	if _, ok := rows[row]; !ok {
		return apperrors.NewKeyNotFoundError(partition, row)
	}
	delete(rows, row)
	return nil
}

func (s *Store[T]) GetByKeys(_ context.Context, partitionKey, rowKey string) (*T, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if rec, ok := s.data[partitionKey][rowKey]; ok {
		entity := rec.entity
		return &entity, nil
	}
	return nil, nil
}

func (s *Store[T]) GetWithFilter(_ context.Context, filter models.Filter, partition string) ([]T, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.scan(s.resolvePartition(partition), 0, func(rec record[T]) bool {
		return s.matches(rec.entity, filter)
	}), nil
}

func (s *Store[T]) GetAll(_ context.Context, partition string, count int) ([]T, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.scan(s.resolvePartition(partition), count, nil), nil
}

func (s *Store[T]) GetByRowKeyFilter(_ context.Context, rowKey string, filter models.Filter) ([]T, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.scan(s.defaultPartition, 0, func(rec record[T]) bool {
		return rec.entity.RowKey() == rowKey && s.matches(rec.entity, filter)
	}), nil
}

func (s *Store[T]) GetAllModifiedBefore(_ context.Context, cutoff time.Time) ([]T, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.scan(s.defaultPartition, 0, func(rec record[T]) bool {
		return !rec.updatedAt.After(cutoff)
	}), nil
}

func (s *Store[T]) StreamAll(ctx context.Context, partition string, count int, opts ...models.StreamOption) <-chan models.Page[T] {
	options := models.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}
	pages := make(chan models.Page[T], options.BufferSize)

	go func() {
		defer close(pages)
		if s.failWith != nil {
			pages <- models.Page[T]{Err: s.failWith}
			return
		}
		items := s.scan(s.resolvePartition(partition), count, nil)
		for lo := 0; lo < len(items); lo += s.pageSize {
			hi := lo + s.pageSize
			if hi > len(items) {
				hi = len(items)
			}
			select {
			case pages <- models.Page[T]{Items: items[lo:hi]}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return pages
}

func (s *Store[T]) BatchUpsert(_ context.Context, entities []T) error {
	for _, entity := range entities {
		if err := s.put(entity); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store[T]) BatchDelete(_ context.Context, entities []T) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entity := range entities {
		delete(s.data[entity.PartitionKey()], entity.RowKey())
	}
	return nil
}

// Test helpers

// Count returns the number of entities in a partition.
func (s *Store[T]) Count(partition string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[s.resolvePartition(partition)])
}

// SetUpdatedAt backdates an entity's last-modified stamp.
func (s *Store[T]) SetUpdatedAt(entity T, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.data[entity.PartitionKey()]
	if rec, ok := rows[entity.RowKey()]; ok {
		rec.updatedAt = at
		rows[entity.RowKey()] = rec
	}
}

func (s *Store[T]) resolvePartition(partition string) string {
	if partition == "" {
		return s.defaultPartition
	}
	return partition
}

func (s *Store[T]) matches(entity T, filter models.Filter) bool {
	if filter.IsZero() {
		return true
	}
	if s.match == nil {
		return true
	}
	return s.match(entity, filter)
}

// scan returns the partition's entities in row-key order, filtered by keep
// (nil keeps everything) and capped at count when count > 0.
func (s *Store[T]) scan(partition string, count int, keep func(record[T]) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.data[partition]
	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	results := make([]T, 0, len(keys))
	for _, k := range keys {
		rec := rows[k]
		if keep != nil && !keep(rec) {
			continue
		}
		results = append(results, rec.entity)
		if count > 0 && len(results) >= count {
			break
		}
	}
	return results
}
