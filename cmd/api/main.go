package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifeboard/core/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lifeboard",
		Short: "LifeBoard API Server",
		Long:  `LifeBoard is a personal productivity service covering projects, tasks, and journal entries, with a derived dashboard and due-date notifications.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
