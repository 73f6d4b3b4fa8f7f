/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when no entity exists at the addressed keys
	ErrNotFound = errors.New("entity not found")

	// ErrMissingArgument is returned when a required constructor argument is absent
	ErrMissingArgument = errors.New("missing required argument")
)

// KeyNotFoundError reports a missing entity together with both of its keys.
type KeyNotFoundError struct {
	PartitionKey string
	RowKey       string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("entity not found: partition key %q, row key %q", e.PartitionKey, e.RowKey)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MissingArgumentError reports a required argument that was nil or blank.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument %q", e.Name)
}

func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// Helper functions for creating errors

// NewKeyNotFoundError creates a new KeyNotFoundError
func NewKeyNotFoundError(partitionKey, rowKey string) error {
	return &KeyNotFoundError{PartitionKey: partitionKey, RowKey: rowKey}
}

// NewMissingArgumentError creates a new MissingArgumentError
func NewMissingArgumentError(name string) error {
	return &MissingArgumentError{Name: name}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsMissingArgument checks if an error is a missing argument error
func IsMissingArgument(err error) bool {
	return errors.Is(err, ErrMissingArgument)
}
