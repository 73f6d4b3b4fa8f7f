/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// maxBatchSize is the store's per-transaction action limit.
const maxBatchSize = 100

// BatchUpsert insert-or-merges all entities in groups of at most 100, one
// transactional store round-trip per group, groups issued in input order.
// A group is atomic; groups are not atomic with respect to each other, so a
// failure partway through leaves earlier groups committed with no rollback.
func (s *Store[T]) BatchUpsert(ctx context.Context, entities []T) error {
	for i, group := range chunk(entities, maxBatchSize) {
		actions := make([]types.TransactWriteItem, 0, len(group))
		for _, entity := range group {
			expr, names, values, err := s.mergeExpression(entity)
			if err != nil {
				return err
			}
			actions = append(actions, types.TransactWriteItem{
				Update: &types.Update{
					TableName:                 &s.tableName,
					Key:                       keyOf(entity.PartitionKey(), entity.RowKey()),
					UpdateExpression:          &expr,
					ExpressionAttributeNames:  names,
					ExpressionAttributeValues: values,
				},
			})
		}

		_, err := s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: actions,
		})
		if err != nil {
			return s.storeError("BatchUpsert", err,
				zap.Int("group", i), zap.Int("groupSize", len(group)))
		}
	}
	return nil
}

// BatchDelete deletes all entities with the same batching discipline as
// BatchUpsert.
func (s *Store[T]) BatchDelete(ctx context.Context, entities []T) error {
	for i, group := range chunk(entities, maxBatchSize) {
		actions := make([]types.TransactWriteItem, 0, len(group))
		for _, entity := range group {
			actions = append(actions, types.TransactWriteItem{
				Delete: &types.Delete{
					TableName: &s.tableName,
					Key:       keyOf(entity.PartitionKey(), entity.RowKey()),
				},
			})
		}

		_, err := s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: actions,
		})
		if err != nil {
			return s.storeError("BatchDelete", err,
				zap.Int("group", i), zap.Int("groupSize", len(group)))
		}
	}
	return nil
}

// chunk splits entities into ceil(len/size) groups of at most size each,
// preserving relative order across group boundaries.
func chunk[T any](entities []T, size int) [][]T {
	if len(entities) == 0 {
		return nil
	}
	groups := make([][]T, 0, (len(entities)+size-1)/size)
	for lo := 0; lo < len(entities); lo += size {
		hi := lo + size
		if hi > len(entities) {
			hi = len(entities)
		}
		groups = append(groups, entities[lo:hi])
	}
	return groups
}
