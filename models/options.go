/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package models

// StreamOptions configures a streaming scan.
type StreamOptions struct {
	PageSize   int32 // Max items per store segment (0 lets the store decide)
	BufferSize int   // Page channel buffer size (default: 1)
}

// StreamOption is a functional option for configuring a streaming scan.
type StreamOption func(*StreamOptions)

// DefaultStreamOptions returns default streaming options.
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize: 1,
	}
}

// WithPageSize caps the number of items fetched per store segment.
func WithPageSize(size int32) StreamOption {
	return func(opts *StreamOptions) {
		opts.PageSize = size
	}
}

// WithBufferSize sets the page channel buffer size.
func WithBufferSize(size int) StreamOption {
	return func(opts *StreamOptions) {
		opts.BufferSize = size
	}
}
