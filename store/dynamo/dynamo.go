/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package dynamo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"go.uber.org/zap"

	apperrors "github.com/pairbridge/tablestore/errors"
	"github.com/pairbridge/tablestore/store"
)

// Reserved attribute names. PK and RK form the table key schema; UpdatedAt is
// stamped by the accessor on every write.
const (
	attrPartitionKey = "PK"
	attrRowKey       = "RK"
	attrUpdatedAt    = "UpdatedAt"
)

// Store implements store.Accessor[T] on a single DynamoDB table. The default
// partition key, bound at construction, is used by every operation whose
// caller does not supply one explicitly.
type Store[T store.Entity] struct {
	log              *zap.Logger
	client           Client
	tableName        string
	defaultPartition string
	now              func() time.Time
}

// New constructs a Store bound to tableName. When ensureTable is set the
// underlying table is created synchronously if missing; otherwise the first
// operation fails if the table is absent.
func New[T store.Entity](ctx context.Context, log *zap.Logger, client Client, tableName, defaultPartition string, ensureTable bool) (*Store[T], error) {
	if log == nil {
		return nil, apperrors.NewMissingArgumentError("logger")
	}
	if client == nil {
		return nil, apperrors.NewMissingArgumentError("client")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, apperrors.NewMissingArgumentError("tableName")
	}
	if strings.TrimSpace(defaultPartition) == "" {
		return nil, apperrors.NewMissingArgumentError("defaultPartition")
	}

	s := &Store[T]{
		log:              log.Named("tablestore"),
		client:           client,
		tableName:        tableName,
		defaultPartition: defaultPartition,
		now:              time.Now,
	}

	if ensureTable {
		if err := s.ensureTable(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// CreateOrUpdate replaces the entity wholesale if present, inserts it otherwise.
func (s *Store[T]) CreateOrUpdate(ctx context.Context, entity T) error {
	item, err := s.marshalEntity(entity)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return s.storeError("CreateOrUpdate", err, entityFields(entity)...)
	}
	return nil
}

// InsertOrMerge merges the entity field-wise if present, inserts it otherwise.
func (s *Store[T]) InsertOrMerge(ctx context.Context, entity T) error {
	expr, names, values, err := s.mergeExpression(entity)
	if err != nil {
		return err
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 &s.tableName,
		Key:                       keyOf(entity.PartitionKey(), entity.RowKey()),
		UpdateExpression:          &expr,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return s.storeError("InsertOrMerge", err, entityFields(entity)...)
	}
	return nil
}

// Delete removes the entity addressed by the entity's keys. The keys are
// checked first; missing keys fail with a KeyNotFoundError before any store
// delete call is issued.
func (s *Store[T]) Delete(ctx context.Context, entity T) error {
	partitionKey, rowKey := entity.PartitionKey(), entity.RowKey()

	existing, err := s.GetByKeys(ctx, partitionKey, rowKey)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.NewKeyNotFoundError(partitionKey, rowKey)
	}

	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.tableName,
		Key:       keyOf(partitionKey, rowKey),
	})
	if err != nil {
		return s.storeError("Delete", err, entityFields(entity)...)
	}
	return nil
}

// GetByKeys returns the entity at (partitionKey, rowKey), or (nil, nil) when
// no entity exists at those keys.
func (s *Store[T]) GetByKeys(ctx context.Context, partitionKey, rowKey string) (*T, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.tableName,
		Key:       keyOf(partitionKey, rowKey),
	})
	if err != nil {
		return nil, s.storeError("GetByKeys", err,
			zap.String("partitionKey", partitionKey), zap.String("rowKey", rowKey))
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return result, nil
}

// marshalEntity converts the entity to a store item and injects the reserved
// key and timestamp attributes, overriding any caller-supplied values.
func (s *Store[T]) marshalEntity(entity T) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	item[attrPartitionKey] = &types.AttributeValueMemberS{Value: entity.PartitionKey()}
	item[attrRowKey] = &types.AttributeValueMemberS{Value: entity.RowKey()}
	item[attrUpdatedAt] = &types.AttributeValueMemberS{Value: strfmt.DateTime(s.now().UTC()).String()}
	return item, nil
}

// mergeExpression transforms the entity's non-key attributes into a SET
// update expression with the corresponding attribute name and value maps.
// Attributes are emitted in sorted order so expressions are deterministic.
func (s *Store[T]) mergeExpression(entity T) (string, map[string]string, map[string]types.AttributeValue, error) {
	item, err := s.marshalEntity(entity)
	if err != nil {
		return "", nil, nil, err
	}
	delete(item, attrPartitionKey)
	delete(item, attrRowKey)

	attrs := make([]string, 0, len(item))
	for attr := range item {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	clauses := make([]string, 0, len(attrs))
	names := make(map[string]string, len(attrs))
	values := make(map[string]types.AttributeValue, len(attrs))
	for i, attr := range attrs {
		namePlaceholder := fmt.Sprintf("#a%d", i)
		valuePlaceholder := fmt.Sprintf(":v%d", i)
		clauses = append(clauses, fmt.Sprintf("%s = %s", namePlaceholder, valuePlaceholder))
		names[namePlaceholder] = attr
		values[valuePlaceholder] = item[attr]
	}

	return "SET " + strings.Join(clauses, ", "), names, values, nil
}

// storeError logs a store-level failure once at the accessor boundary and
// returns it wrapped, so callers retain the original error identity.
func (s *Store[T]) storeError(op string, err error, fields ...zap.Field) error {
	all := make([]zap.Field, 0, len(fields)+3)
	all = append(all, zap.String("op", op), zap.String("table", s.tableName), zap.Error(err))
	all = append(all, fields...)
	s.log.Error("store operation failed", all...)
	return fmt.Errorf("%s on table %s: %w", op, s.tableName, err)
}

func keyOf(partitionKey, rowKey string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrPartitionKey: &types.AttributeValueMemberS{Value: partitionKey},
		attrRowKey:       &types.AttributeValueMemberS{Value: rowKey},
	}
}

func entityFields(entity store.Entity) []zap.Field {
	return []zap.Field{
		zap.String("partitionKey", entity.PartitionKey()),
		zap.String("rowKey", entity.RowKey()),
	}
}
