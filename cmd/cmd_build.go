package cmd

import (
	"fmt"
	"os"

	"github.com/osdev-tools/bootimage/builder"
	"github.com/osdev-tools/bootimage/log"
	"github.com/osdev-tools/bootimage/types"
	"github.com/spf13/cobra"
)

// BuildCommand builds a bootable disk image from a kernel crate
func BuildCommand() *cobra.Command {
	var cmdBuild = &cobra.Command{
		Use:   "build",
		Short: "Build a bootable disk image from the kernel crate",
		Run:   buildCommandHandler,
	}

	persistentFlags := cmdBuild.PersistentFlags()

	PersistConfigCommandFlags(persistentFlags)
	PersistBuildCommandFlags(persistentFlags)
	PersistImageCommandFlags(persistentFlags)

	return cmdBuild
}

func buildCommandHandler(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	configFlags := NewConfigCommandFlags(flags)
	globalFlags := NewGlobalCommandFlags(flags)
	buildFlags := NewBuildCommandFlags(flags)
	imageFlags := NewImageCommandFlags(flags)

	c := types.NewConfig()

	mergeContainer := NewMergeConfigContainer(configFlags, globalFlags, buildFlags, imageFlags)
	err := mergeContainer.Merge(c)
	if err != nil {
		exitWithError(err.Error())
	}

	log.InitDefault(os.Stdout, c)

	if err := builder.BuildImage(c); err != nil {
		exitWithError(err.Error())
	}
	fmt.Printf("Bootable image file:%s\n", c.Output)
}
