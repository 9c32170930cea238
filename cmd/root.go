package cmd

import (
	"github.com/spf13/cobra"
)

// GetRootCommand provides set all commands for bootimage
func GetRootCommand() *cobra.Command {
	var rootCmd = &cobra.Command{Use: "bootimage"}

	// persist flags transversal to every command
	PersistGlobalCommandFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(BuildCommand())
	rootCmd.AddCommand(ImageCommands())
	rootCmd.AddCommand(VersionCommand())

	return rootCmd
}
