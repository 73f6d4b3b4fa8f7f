/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTeamsCmd(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Inspect and manage team installations",
	}
	cmd.AddCommand(newTeamsListCmd(cfgPath), newTeamsShowCmd(cfgPath), newTeamsRemoveCmd(cfgPath))
	return cmd
}

func newTeamsListCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every team the app is installed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cleanup, err := newApp(cmd.Context(), *cfgPath)
			if err != nil {
				return err
			}
			defer cleanup()

			total := 0
			for page := range a.teams.StreamInstalledTeams(cmd.Context()) {
				if page.Err != nil {
					return page.Err
				}
				for _, team := range page.Items {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", team.TeamID, team.TenantID, team.Name)
					total++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d team(s)\n", total)
			return nil
		},
	}
}

func newTeamsShowCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <teamID>",
		Short: "Show one team installation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := newApp(cmd.Context(), *cfgPath)
			if err != nil {
				return err
			}
			defer cleanup()

			team, err := a.teams.Team(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if team == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "team %s not found\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Team ID:     %s\n", team.TeamID)
			fmt.Fprintf(cmd.OutOrStdout(), "Tenant ID:   %s\n", team.TenantID)
			fmt.Fprintf(cmd.OutOrStdout(), "Name:        %s\n", team.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Service URL: %s\n", team.ServiceURL)
			fmt.Fprintf(cmd.OutOrStdout(), "Installer:   %s\n", team.InstallerName)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated at:  %s\n", team.UpdatedAt)
			return nil
		},
	}
}

func newTeamsRemoveCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <teamID>",
		Short: "Remove a team installation record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := newApp(cmd.Context(), *cfgPath)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.teams.RemoveTeamInstall(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed team %s\n", args[0])
			return nil
		},
	}
}
