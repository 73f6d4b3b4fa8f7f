/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package dynamo

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pairbridge/tablestore/models"
)

func collectPages[T any](ch <-chan models.Page[T]) []models.Page[T] {
	var pages []models.Page[T]
	for page := range ch {
		pages = append(pages, page)
	}
	return pages
}

func TestStreamAll(t *testing.T) {
	ctx := context.Background()

	t.Run("OnePagePerSegment", func(t *testing.T) {
		client := &fakeClient{queryOutputs: []*dynamodb.QueryOutput{
			segment("w2", widgetItem("w1", "a"), widgetItem("w2", "b")),
			segment("w4", widgetItem("w3", "c"), widgetItem("w4", "d")),
			segment("", widgetItem("w5", "e")),
		}}
		s := newTestStore(t, client)

		pages := collectPages(s.StreamAll(ctx, "", 0))

		require.Len(t, pages, 3, "three segments must yield exactly three pages")
		assert.Len(t, pages[0].Items, 2)
		assert.NotNil(t, pages[0].Token)
		assert.NotNil(t, pages[1].Token)
		assert.Nil(t, pages[2].Token, "final page carries no continuation token")
		assert.Equal(t, "w5", pages[2].Items[0].ID)
		assert.Equal(t, 3, client.queryCount())
	})

	t.Run("CountCapTruncatesAndStops", func(t *testing.T) {
		client := &fakeClient{queryOutputs: []*dynamodb.QueryOutput{
			segment("w2", widgetItem("w1", "a"), widgetItem("w2", "b")),
			segment("w4", widgetItem("w3", "c"), widgetItem("w4", "d")),
			segment("", widgetItem("w5", "e")),
		}}
		s := newTestStore(t, client)

		pages := collectPages(s.StreamAll(ctx, "", 3))

		require.Len(t, pages, 2)
		assert.Len(t, pages[0].Items, 2)
		assert.Len(t, pages[1].Items, 1)
		assert.Equal(t, 2, client.queryCount())
	})

	t.Run("PageSizeForwardedToStore", func(t *testing.T) {
		client := &fakeClient{}
		s := newTestStore(t, client)

		collectPages(s.StreamAll(ctx, "", 0, models.WithPageSize(25)))

		require.Equal(t, 1, client.queryCount())
		require.NotNil(t, client.queryInputs[0].Limit)
		assert.Equal(t, int32(25), *client.queryInputs[0].Limit)
	})

	t.Run("FailedSegmentSurfacesAsFailedPage", func(t *testing.T) {
		boom := stderrors.New("segment boom")
		s := newTestStore(t, &fakeClient{queryErr: boom})

		pages := collectPages(s.StreamAll(ctx, "", 0))

		require.Len(t, pages, 1)
		require.Error(t, pages[0].Err)
		assert.True(t, stderrors.Is(pages[0].Err, boom))
	})

	t.Run("CancellationEndsStream", func(t *testing.T) {
		// An endless token chain: only cancellation can stop this scan.
		client := &fakeClient{
			queryForever: segment("again", widgetItem("w1", "a")),
		}
		s := newTestStore(t, client)

		streamCtx, cancel := context.WithCancel(ctx)
		ch := s.StreamAll(streamCtx, "", 0, models.WithBufferSize(1))

		<-ch
		cancel()
		for range ch {
			// Drain whatever was in flight; the channel must close.
		}
	})
}
