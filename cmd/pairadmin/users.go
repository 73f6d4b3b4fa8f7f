/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newUsersCmd(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect and manage pair-up participants",
	}
	cmd.AddCommand(
		newUsersShowCmd(cfgPath),
		newUsersOptInCmd(cfgPath),
		newUsersOptOutCmd(cfgPath),
		newUsersOptedInCmd(cfgPath),
		newUsersStaleCmd(cfgPath),
	)
	return cmd
}

func newUsersShowCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <userID>",
		Short: "Show one participant record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := newApp(cmd.Context(), *cfgPath)
			if err != nil {
				return err
			}
			defer cleanup()

			user, err := a.users.User(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if user == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "user %s not found\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User ID:     %s\n", user.UserID)
			fmt.Fprintf(cmd.OutOrStdout(), "Tenant ID:   %s\n", user.TenantID)
			fmt.Fprintf(cmd.OutOrStdout(), "Service URL: %s\n", user.ServiceURL)
			fmt.Fprintf(cmd.OutOrStdout(), "Opted in:    %t\n", user.OptedIn)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated at:  %s\n", user.UpdatedAt)
			return nil
		},
	}
}

func newUsersOptInCmd(cfgPath *string) *cobra.Command {
	var tenantID, serviceURL string

	cmd := &cobra.Command{
		Use:   "optin <userID>",
		Short: "Opt a participant in to pair-ups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := newApp(cmd.Context(), *cfgPath)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.users.SetOptInStatus(cmd.Context(), args[0], tenantID, serviceURL, true); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %s opted in\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant the user belongs to")
	cmd.Flags().StringVar(&serviceURL, "service-url", "", "service URL for proactive messages")
	return cmd
}

func newUsersOptOutCmd(cfgPath *string) *cobra.Command {
	var tenantID, serviceURL string

	cmd := &cobra.Command{
		Use:   "optout <userID>",
		Short: "Opt a participant out of pair-ups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := newApp(cmd.Context(), *cfgPath)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.users.SetOptInStatus(cmd.Context(), args[0], tenantID, serviceURL, false); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %s opted out\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant the user belongs to")
	cmd.Flags().StringVar(&serviceURL, "service-url", "", "service URL for proactive messages")
	return cmd
}

func newUsersOptedInCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "optedin",
		Short: "List participants currently opted in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cleanup, err := newApp(cmd.Context(), *cfgPath)
			if err != nil {
				return err
			}
			defer cleanup()

			users, err := a.users.OptedInUsers(cmd.Context())
			if err != nil {
				return err
			}
			for _, user := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", user.UserID, user.TenantID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d user(s)\n", len(users))
			return nil
		},
	}
}

func newUsersStaleCmd(cfgPath *string) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stale",
		Short: "List participants not updated within the given number of days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cleanup, err := newApp(cmd.Context(), *cfgPath)
			if err != nil {
				return err
			}
			defer cleanup()

			cutoff := time.Now().UTC().AddDate(0, 0, -days)
			users, err := a.users.StaleUsers(cmd.Context(), cutoff)
			if err != nil {
				return err
			}
			for _, user := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", user.UserID, user.TenantID, user.UpdatedAt)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d user(s) last updated before %s\n", len(users), cutoff.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "staleness threshold in days")
	return cmd
}
