/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package dynamo

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeClient is a scripted Client. Outputs are consumed in order; an
// exhausted script returns an empty output.
type fakeClient struct {
	mu sync.Mutex

	getOutput *dynamodb.GetItemOutput
	getErr    error
	getInputs []*dynamodb.GetItemInput

	putErr    error
	putInputs []*dynamodb.PutItemInput

	updateErr    error
	updateInputs []*dynamodb.UpdateItemInput

	deleteErr    error
	deleteInputs []*dynamodb.DeleteItemInput

	queryOutputs []*dynamodb.QueryOutput
	queryForever *dynamodb.QueryOutput // returned on every call when set
	queryErr     error
	queryInputs  []*dynamodb.QueryInput

	transactErr    error
	transactErrAt  int // 1-based call index that fails; 0 never fails
	transactInputs []*dynamodb.TransactWriteItemsInput

	describeOutputs []*dynamodb.DescribeTableOutput
	describeErrs    []error
	describeCalls   int

	createErr    error
	createInputs []*dynamodb.CreateTableInput
}

func (f *fakeClient) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getInputs = append(f.getInputs, params)
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOutput != nil {
		return f.getOutput, nil
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeClient) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putInputs = append(f.putInputs, params)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeClient) UpdateItem(_ context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateInputs = append(f.updateInputs, params)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeClient) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteInputs = append(f.deleteInputs, params)
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeClient) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Copy: the accessor mutates ExclusiveStartKey on the same input between segments.
	cp := *params
	f.queryInputs = append(f.queryInputs, &cp)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if f.queryForever != nil {
		return f.queryForever, nil
	}
	if len(f.queryOutputs) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	out := f.queryOutputs[0]
	f.queryOutputs = f.queryOutputs[1:]
	return out, nil
}

func (f *fakeClient) TransactWriteItems(_ context.Context, params *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactInputs = append(f.transactInputs, params)
	if f.transactErrAt > 0 && len(f.transactInputs) == f.transactErrAt {
		return nil, f.transactErr
	}
	if f.transactErrAt == 0 && f.transactErr != nil {
		return nil, f.transactErr
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeClient) DescribeTable(_ context.Context, params *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.describeCalls
	f.describeCalls++
	if i < len(f.describeErrs) && f.describeErrs[i] != nil {
		return nil, f.describeErrs[i]
	}
	if i < len(f.describeOutputs) && f.describeOutputs[i] != nil {
		return f.describeOutputs[i], nil
	}
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{TableStatus: types.TableStatusActive},
	}, nil
}

func (f *fakeClient) CreateTable(_ context.Context, params *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createInputs = append(f.createInputs, params)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeClient) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queryInputs)
}
