/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package models

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ContinuationToken marks the resumption point of a segmented scan.
// A nil token signals that the scan is complete.
type ContinuationToken map[string]types.AttributeValue

// Page is one store segment worth of entities produced by a streaming scan.
type Page[T any] struct {
	// Items holds the entities of this segment.
	Items []T
	// Token is the scan position after this page; nil on the final page.
	Token ContinuationToken
	// Err is set when the segment failed; a failed page ends the stream.
	Err error
}
