/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package pairup

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/pairbridge/tablestore/errors"
	"github.com/pairbridge/tablestore/models"
	"github.com/pairbridge/tablestore/store"
)

// UserStore tracks user enrollment in pair-up notifications.
type UserStore struct {
	log      *zap.Logger
	accessor store.Accessor[UserInfo]
}

// NewUserStore creates a UserStore over the given accessor.
func NewUserStore(log *zap.Logger, accessor store.Accessor[UserInfo]) (*UserStore, error) {
	if log == nil {
		return nil, apperrors.NewMissingArgumentError("logger")
	}
	if accessor == nil {
		return nil, apperrors.NewMissingArgumentError("accessor")
	}
	return &UserStore{log: log.Named("users"), accessor: accessor}, nil
}

// SetOptInStatus records whether a user receives pair-up notifications,
// merging over any existing record.
func (s *UserStore) SetOptInStatus(ctx context.Context, userID, tenantID, serviceURL string, optedIn bool) error {
	if userID == "" {
		return apperrors.NewMissingArgumentError("userID")
	}
	return s.accessor.InsertOrMerge(ctx, UserInfo{
		UserID:     userID,
		TenantID:   tenantID,
		ServiceURL: serviceURL,
		OptedIn:    optedIn,
	})
}

// User returns the enrollment record for userID, or nil when unknown.
func (s *UserStore) User(ctx context.Context, userID string) (*UserInfo, error) {
	return s.accessor.GetByKeys(ctx, UserPartition, userID)
}

// OptedInUsers returns every user currently receiving notifications.
func (s *UserStore) OptedInUsers(ctx context.Context) ([]UserInfo, error) {
	filter := models.NewFilterBuilder().EqualsBool("OptedIn", true).Build()
	return s.accessor.GetWithFilter(ctx, filter, "")
}

// SetUserInfos writes a collection of enrollment records in batches.
func (s *UserStore) SetUserInfos(ctx context.Context, users []UserInfo) error {
	s.log.Debug("writing user infos", zap.Int("count", len(users)))
	return s.accessor.BatchUpsert(ctx, users)
}

// StaleUsers returns users whose record has not been written since cutoff.
func (s *UserStore) StaleUsers(ctx context.Context, cutoff time.Time) ([]UserInfo, error) {
	return s.accessor.GetAllModifiedBefore(ctx, cutoff)
}
