/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package dynamo

import (
	"context"

	"go.uber.org/zap"

	"github.com/pairbridge/tablestore/models"
)

// StreamAll lazily produces entity pages from the resolved partition, one
// page per store segment. The channel closes when the continuation token
// chain ends, the count cap is reached (count > 0), ctx is cancelled between
// segments, or a segment fails; the failure surfaces as a page with Err set.
// The scan is restartable only by issuing a new call.
func (s *Store[T]) StreamAll(ctx context.Context, partition string, count int, opts ...models.StreamOption) <-chan models.Page[T] {
	options := models.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pages := make(chan models.Page[T], options.BufferSize)
	go s.streamWorker(ctx, s.resolvePartition(partition), count, options, pages)
	return pages
}

func (s *Store[T]) streamWorker(
	ctx context.Context,
	partition string,
	count int,
	options models.StreamOptions,
	pages chan<- models.Page[T],
) {
	defer close(pages)

	input := s.queryInput(partition, models.Filter{}, options.PageSize)
	sent := 0

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		out, err := s.client.Query(ctx, input)
		if err != nil {
			failed := models.Page[T]{Err: s.storeError("StreamAll", err, zap.String("partitionKey", partition))}
			select {
			case pages <- failed:
			case <-ctx.Done():
			}
			return
		}

		items, err := unmarshalItems[T](out.Items)
		if err != nil {
			failed := models.Page[T]{Err: err}
			select {
			case pages <- failed:
			case <-ctx.Done():
			}
			return
		}

		if count > 0 && sent+len(items) > count {
			items = items[:count-sent]
		}

		page := models.Page[T]{Items: items}
		if len(out.LastEvaluatedKey) > 0 {
			page.Token = models.ContinuationToken(out.LastEvaluatedKey)
		}

		select {
		case pages <- page:
		case <-ctx.Done():
			return
		}
		sent += len(items)

		if count > 0 && sent >= count {
			return
		}
		if len(out.LastEvaluatedKey) == 0 {
			return
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
