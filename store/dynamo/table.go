/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package dynamo

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const tableCreateTimeout = 2 * time.Minute

// ensureTable creates the table if it does not exist and waits until it is
// active. An existing table is left untouched.
func (s *Store[T]) ensureTable(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: &s.tableName,
	})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return s.storeError("DescribeTable", err)
	}

	s.log.Info("creating table", zap.String("table", s.tableName))
	_, err = s.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: &s.tableName,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrPartitionKey), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(attrRowKey), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrPartitionKey), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String(attrRowKey), KeyType: types.KeyTypeRange},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return s.storeError("CreateTable", err)
	}

	waiter := dynamodb.NewTableExistsWaiter(s.client)
	err = waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: &s.tableName}, tableCreateTimeout)
	if err != nil {
		return s.storeError("WaitForTable", err)
	}
	return nil
}
