/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package pairup

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/pairbridge/tablestore/errors"
	"github.com/pairbridge/tablestore/models"
	"github.com/pairbridge/tablestore/store"
)

// TeamStore tracks which teams the app is installed in.
type TeamStore struct {
	log      *zap.Logger
	accessor store.Accessor[TeamInfo]
}

// NewTeamStore creates a TeamStore over the given accessor.
func NewTeamStore(log *zap.Logger, accessor store.Accessor[TeamInfo]) (*TeamStore, error) {
	if log == nil {
		return nil, apperrors.NewMissingArgumentError("logger")
	}
	if accessor == nil {
		return nil, apperrors.NewMissingArgumentError("accessor")
	}
	return &TeamStore{log: log.Named("teams"), accessor: accessor}, nil
}

// SaveTeamInstall records an app installation, merging over any existing record.
func (s *TeamStore) SaveTeamInstall(ctx context.Context, team TeamInfo) error {
	if team.TeamID == "" {
		return apperrors.NewMissingArgumentError("teamID")
	}
	return s.accessor.InsertOrMerge(ctx, team)
}

// RemoveTeamInstall deletes a team's installation record. Removing a team that
// was never recorded is not an error.
func (s *TeamStore) RemoveTeamInstall(ctx context.Context, teamID string) error {
	err := s.accessor.Delete(ctx, TeamInfo{TeamID: teamID})
	if apperrors.IsNotFound(err) {
		s.log.Debug("team install already removed", zap.String("teamId", teamID))
		return nil
	}
	return err
}

// Team returns the installation record for teamID, or nil when unknown.
func (s *TeamStore) Team(ctx context.Context, teamID string) (*TeamInfo, error) {
	return s.accessor.GetByKeys(ctx, TeamPartition, teamID)
}

// InstalledTeams returns every team the app is installed in.
func (s *TeamStore) InstalledTeams(ctx context.Context) ([]TeamInfo, error) {
	return s.accessor.GetAll(ctx, "", 0)
}

// StreamInstalledTeams enumerates installed teams page by page.
func (s *TeamStore) StreamInstalledTeams(ctx context.Context, opts ...models.StreamOption) <-chan models.Page[TeamInfo] {
	return s.accessor.StreamAll(ctx, "", 0, opts...)
}

// TenantTeams returns the installed teams belonging to one tenant.
func (s *TeamStore) TenantTeams(ctx context.Context, tenantID string) ([]TeamInfo, error) {
	filter := models.NewFilterBuilder().Equals("TenantId", tenantID).Build()
	return s.accessor.GetWithFilter(ctx, filter, "")
}
