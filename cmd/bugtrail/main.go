package main

import (
	"os"

	"github.com/spf13/cobra"

	"bugtrail/internal/interfaces/cli/migrate"
	"bugtrail/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bugtrail",
		Short: "Bugtrail - multi-tenant issue tracking service",
		Long:  `Bugtrail is an issue tracking service with per-company tenancy, role-scoped visibility, and a full ticket audit trail.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
