/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package pairup

import (
	"context"

	apperrors "github.com/pairbridge/tablestore/errors"
	"github.com/pairbridge/tablestore/models"
	"github.com/pairbridge/tablestore/store"
)

// PairStore keeps the history of issued pairings.
type PairStore struct {
	accessor store.Accessor[PairupRecord]
}

// NewPairStore creates a PairStore over the given accessor.
func NewPairStore(accessor store.Accessor[PairupRecord]) (*PairStore, error) {
	if accessor == nil {
		return nil, apperrors.NewMissingArgumentError("accessor")
	}
	return &PairStore{accessor: accessor}, nil
}

// RecordPairups persists the pairings of one round in batches.
func (s *PairStore) RecordPairups(ctx context.Context, records []PairupRecord) error {
	return s.accessor.BatchUpsert(ctx, records)
}

// PairHistory returns every recorded pairing a user took part in, on either
// side of the pair.
func (s *PairStore) PairHistory(ctx context.Context, userID string) ([]PairupRecord, error) {
	filter := models.NewFilterBuilder().
		Equals("FirstUserId", userID).
		OrEquals("SecondUserId", userID).
		Build()
	return s.accessor.GetWithFilter(ctx, filter, "")
}

// ForgetPairups removes recorded pairings, batched like RecordPairups.
func (s *PairStore) ForgetPairups(ctx context.Context, records []PairupRecord) error {
	return s.accessor.BatchDelete(ctx, records)
}
