/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package pairup_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/pairbridge/tablestore/errors"
	"github.com/pairbridge/tablestore/models"
	"github.com/pairbridge/tablestore/pairup"
	"github.com/pairbridge/tablestore/store/memory"
)

func TestNewTeamStore(t *testing.T) {
	accessor := memory.New[pairup.TeamInfo](pairup.TeamPartition)

	_, err := pairup.NewTeamStore(nil, accessor)
	assert.True(t, apperrors.IsMissingArgument(err))

	_, err = pairup.NewTeamStore(zap.NewNop(), nil)
	assert.True(t, apperrors.IsMissingArgument(err))

	s, err := pairup.NewTeamStore(zap.NewNop(), accessor)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestTeamStore(t *testing.T) {
	ctx := context.Background()
	accessor := memory.New[pairup.TeamInfo](pairup.TeamPartition).
		WithMatchFunc(func(team pairup.TeamInfo, _ models.Filter) bool {
			return team.TenantID == "t-1"
		})
	s, err := pairup.NewTeamStore(zap.NewNop(), accessor)
	require.NoError(t, err)

	require.NoError(t, s.SaveTeamInstall(ctx, pairup.TeamInfo{
		TeamID: "19:general", TenantID: "t-1", ServiceURL: "https://smba.example.com", Name: "General",
	}))
	require.NoError(t, s.SaveTeamInstall(ctx, pairup.TeamInfo{
		TeamID: "19:random", TenantID: "t-2", ServiceURL: "https://smba.example.com", Name: "Random",
	}))

	t.Run("BlankTeamIDRejected", func(t *testing.T) {
		err := s.SaveTeamInstall(ctx, pairup.TeamInfo{TenantID: "t-1"})
		assert.True(t, apperrors.IsMissingArgument(err))
	})

	t.Run("Lookup", func(t *testing.T) {
		team, err := s.Team(ctx, "19:general")
		require.NoError(t, err)
		require.NotNil(t, team)
		assert.Equal(t, "General", team.Name)

		unknown, err := s.Team(ctx, "19:nope")
		require.NoError(t, err)
		assert.Nil(t, unknown)
	})

	t.Run("InstalledTeams", func(t *testing.T) {
		teams, err := s.InstalledTeams(ctx)
		require.NoError(t, err)
		assert.Len(t, teams, 2)
	})

	t.Run("TenantTeams", func(t *testing.T) {
		teams, err := s.TenantTeams(ctx, "t-1")
		require.NoError(t, err)
		require.Len(t, teams, 1)
		assert.Equal(t, "19:general", teams[0].TeamID)
	})

	t.Run("StreamInstalledTeams", func(t *testing.T) {
		total := 0
		for page := range s.StreamInstalledTeams(ctx) {
			require.NoError(t, page.Err)
			total += len(page.Items)
		}
		assert.Equal(t, 2, total)
	})

	t.Run("RemoveTolerant", func(t *testing.T) {
		require.NoError(t, s.RemoveTeamInstall(ctx, "19:random"))
		require.NoError(t, s.RemoveTeamInstall(ctx, "19:random"), "second remove must not fail")
		teams, err := s.InstalledTeams(ctx)
		require.NoError(t, err)
		assert.Len(t, teams, 1)
	})
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	accessor := memory.New[pairup.UserInfo](pairup.UserPartition).
		WithMatchFunc(func(user pairup.UserInfo, _ models.Filter) bool {
			return user.OptedIn
		})
	s, err := pairup.NewUserStore(zap.NewNop(), accessor)
	require.NoError(t, err)

	require.NoError(t, s.SetOptInStatus(ctx, "u-1", "t-1", "https://smba.example.com", true))
	require.NoError(t, s.SetOptInStatus(ctx, "u-2", "t-1", "https://smba.example.com", false))

	t.Run("OptedInUsers", func(t *testing.T) {
		users, err := s.OptedInUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "u-1", users[0].UserID)
	})

	t.Run("OptOutFlips", func(t *testing.T) {
		require.NoError(t, s.SetOptInStatus(ctx, "u-1", "t-1", "https://smba.example.com", false))
		users, err := s.OptedInUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("BatchWrite", func(t *testing.T) {
		batch := []pairup.UserInfo{
			{UserID: "u-3", TenantID: "t-1", OptedIn: true},
			{UserID: "u-4", TenantID: "t-1", OptedIn: true},
		}
		require.NoError(t, s.SetUserInfos(ctx, batch))

		u, err := s.User(ctx, "u-4")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.True(t, u.OptedIn)
	})

	t.Run("StaleUsers", func(t *testing.T) {
		accessor.SetUpdatedAt(pairup.UserInfo{UserID: "u-2"}, time.Now().Add(-30*24*time.Hour))
		stale, err := s.StaleUsers(ctx, time.Now().Add(-7*24*time.Hour))
		require.NoError(t, err)
		require.Len(t, stale, 1)
		assert.Equal(t, "u-2", stale[0].UserID)
	})
}

func TestPairStore(t *testing.T) {
	ctx := context.Background()
	accessor := memory.New[pairup.PairupRecord](pairup.PairupPartition).
		WithMatchFunc(func(rec pairup.PairupRecord, _ models.Filter) bool {
			return rec.FirstUserID == "u-1" || rec.SecondUserID == "u-1"
		})
	s, err := pairup.NewPairStore(accessor)
	require.NoError(t, err)

	records := []pairup.PairupRecord{
		pairup.NewPairupRecord("u-1", "u-2", 1),
		pairup.NewPairupRecord("u-3", "u-4", 1),
		pairup.NewPairupRecord("u-5", "u-1", 2),
	}
	assert.NotEqual(t, records[0].ID, records[1].ID, "record identifiers must be unique")

	require.NoError(t, s.RecordPairups(ctx, records))

	history, err := s.PairHistory(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, history, 2)

	require.NoError(t, s.ForgetPairups(ctx, records[:1]))
	history, err = s.PairHistory(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
