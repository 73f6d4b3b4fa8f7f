/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package dynamo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"go.uber.org/zap"

	"github.com/pairbridge/tablestore/models"
)

// GetWithFilter returns all entities in the resolved partition matching the
// filter.
func (s *Store[T]) GetWithFilter(ctx context.Context, filter models.Filter, partition string) ([]T, error) {
	return s.queryPages(ctx, s.resolvePartition(partition), filter, 0)
}

// GetAll returns all entities in the resolved partition, capped at count when
// count > 0.
func (s *Store[T]) GetAll(ctx context.Context, partition string, count int) ([]T, error) {
	return s.queryPages(ctx, s.resolvePartition(partition), models.Filter{}, count)
}

// GetByRowKeyFilter returns entities in the default partition matching both
// the row key and the filter, AND-combined.
func (s *Store[T]) GetByRowKeyFilter(ctx context.Context, rowKey string, filter models.Filter) ([]T, error) {
	rowFilter := models.Filter{
		Expression: attrRowKey + " = :rk",
		Values: map[string]types.AttributeValue{
			":rk": &types.AttributeValueMemberS{Value: rowKey},
		},
	}
	return s.queryPages(ctx, s.defaultPartition, rowFilter.And(filter), 0)
}

// GetAllModifiedBefore returns entities in the default partition whose
// last-modified stamp is at or before cutoff.
func (s *Store[T]) GetAllModifiedBefore(ctx context.Context, cutoff time.Time) ([]T, error) {
	filter := models.Filter{
		Expression: attrUpdatedAt + " <= :cutoff",
		Values: map[string]types.AttributeValue{
			":cutoff": &types.AttributeValueMemberS{Value: strfmt.DateTime(cutoff.UTC()).String()},
		},
	}
	return s.queryPages(ctx, s.defaultPartition, filter, 0)
}

// queryPages accumulates the full result of a segmented query, following the
// continuation token chain until it ends. It stops early once count results
// are collected (count > 0) and observes cancellation between segments.
func (s *Store[T]) queryPages(ctx context.Context, partition string, filter models.Filter, count int) ([]T, error) {
	input := s.queryInput(partition, filter, 0)

	var results []T
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		out, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, s.storeError("Query", err, zap.String("partitionKey", partition))
		}

		page, err := unmarshalItems[T](out.Items)
		if err != nil {
			return nil, err
		}
		results = append(results, page...)

		if count > 0 && len(results) >= count {
			return results[:count], nil
		}
		if len(out.LastEvaluatedKey) == 0 {
			return results, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (s *Store[T]) queryInput(partition string, filter models.Filter, pageSize int32) *dynamodb.QueryInput {
	keyCondition := attrPartitionKey + " = :pk"
	values := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: partition},
	}

	input := &dynamodb.QueryInput{
		TableName:                 &s.tableName,
		KeyConditionExpression:    &keyCondition,
		ExpressionAttributeValues: values,
	}
	if !filter.IsZero() {
		input.FilterExpression = aws.String(filter.Expression)
		for k, v := range filter.Values {
			values[k] = v
		}
	}
	if pageSize > 0 {
		input.Limit = aws.Int32(pageSize)
	}
	return input
}

// resolvePartition applies the partition resolution policy: a non-blank
// explicit partition is used verbatim, otherwise the accessor default.
func (s *Store[T]) resolvePartition(partition string) string {
	if strings.TrimSpace(partition) == "" {
		return s.defaultPartition
	}
	return partition
}

func unmarshalItems[T any](items []map[string]types.AttributeValue) ([]T, error) {
	results := make([]T, 0, len(items))
	for _, item := range items {
		var entity T
		if err := attributevalue.UnmarshalMap(item, &entity); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
		}
		results = append(results, entity)
	}
	return results, nil
}
