/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

// pairadmin administers the pair-up backend's teams and users.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pairbridge/tablestore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "pairadmin",
		Short:         "Administer pair-up teams and users",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "pairadmin.yaml", "path to the YAML config file")

	root.AddCommand(
		newTeamsCmd(&cfgPath),
		newUsersCmd(&cfgPath),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			info := tablestore.GetVersionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "pairadmin version %s\n", info.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Git commit: %s\n", info.GitCommit)
			fmt.Fprintf(cmd.OutOrStdout(), "Build date: %s\n", info.BuildDate)
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", info.GoVersion)
		},
	}
}
