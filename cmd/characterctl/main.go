// Package main is the entry point for the characterctl admin CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "characterctl",
	Short: "Character store admin CLI",
	Long:  `characterctl is an operator tool for the character store: listing, archiving, and restoring characters, granting the admin role, and rolling dice.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(archivedCmd)
	rootCmd.AddCommand(grantAdminCmd)
	rootCmd.AddCommand(rollCmd)
}
