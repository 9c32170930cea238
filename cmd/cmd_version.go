package cmd

import (
	"fmt"

	"github.com/osdev-tools/bootimage/constants"
	"github.com/spf13/cobra"
)

func printVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("bootimage version: %s\n", constants.Version)
}

// VersionCommand provides version command
func VersionCommand() *cobra.Command {
	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Version",
		Run:   printVersion,
	}
	return cmdVersion
}
