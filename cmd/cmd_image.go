package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/osdev-tools/bootimage/bootloader"
	"github.com/osdev-tools/bootimage/builder"
	"github.com/osdev-tools/bootimage/image"
	"github.com/osdev-tools/bootimage/log"
	"github.com/osdev-tools/bootimage/types"
)

// ImageCommands provides disk image related commands
func ImageCommands() *cobra.Command {
	var cmdImage = &cobra.Command{
		Use:       "image",
		Short:     "manage disk images",
		ValidArgs: []string{"create", "layout"},
		Args:      cobra.OnlyValidArgs,
	}

	PersistConfigCommandFlags(cmdImage.PersistentFlags())
	PersistImageCommandFlags(cmdImage.PersistentFlags())

	cmdImage.AddCommand(imageCreateCommand())
	cmdImage.AddCommand(imageLayoutCommand())

	return cmdImage
}

func imageCreateCommand() *cobra.Command {
	var cmdImageCreate = &cobra.Command{
		Use:   "create",
		Short: "create a disk image from prebuilt kernel and bootloader executables",
		Run:   imageCreateCommandHandler,
	}
	return cmdImageCreate
}

func imageCreateCommandHandler(cmd *cobra.Command, args []string) {
	c := mergeImageConfig(cmd)

	if err := builder.BuildImage(c); err != nil {
		exitWithError(err.Error())
	}
	fmt.Printf("Bootable image file:%s\n", c.Output)
}

func imageLayoutCommand() *cobra.Command {
	var cmdImageLayout = &cobra.Command{
		Use:   "layout",
		Short: "print the byte layout the disk image will have",
		Run:   imageLayoutCommandHandler,
	}
	return cmdImageLayout
}

func imageLayoutCommandHandler(cmd *cobra.Command, args []string) {
	c := mergeImageConfig(cmd)

	elfBytes, err := os.ReadFile(c.BootloaderPath)
	if err != nil {
		exitWithError(fmt.Sprintf("cannot read bootloader %s: %v", c.BootloaderPath, err))
	}
	payload, err := bootloader.ExtractPayload(elfBytes)
	if err != nil {
		exitWithError(err.Error())
	}

	info, err := os.Stat(c.KernelPath)
	if err != nil {
		exitWithError(fmt.Sprintf("cannot stat kernel %s: %v", c.KernelPath, err))
	}

	layout := image.NewLayout(uint64(len(payload)), uint64(info.Size()))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Region", "Start", "Size"})
	table.Append([]string{"bootloader", fmt.Sprintf("%d", layout.BootloaderStart), fmt.Sprintf("%d", layout.BootloaderSize)})
	table.Append([]string{"kernel info block", fmt.Sprintf("%d", layout.InfoBlockStart), fmt.Sprintf("%d", image.SectorSize)})
	table.Append([]string{"kernel", fmt.Sprintf("%d", layout.KernelStart), fmt.Sprintf("%d", layout.KernelSize)})
	table.Append([]string{"padding", fmt.Sprintf("%d", layout.PaddingStart), fmt.Sprintf("%d", layout.PaddingSize)})
	table.SetFooter([]string{"total", "", fmt.Sprintf("%d", layout.TotalSize)})
	table.Render()
}

// mergeImageConfig resolves the configuration shared by the image
// subcommands and requires prebuilt kernel and bootloader paths.
func mergeImageConfig(cmd *cobra.Command) *types.Config {
	flags := cmd.Flags()

	configFlags := NewConfigCommandFlags(flags)
	globalFlags := NewGlobalCommandFlags(flags)
	imageFlags := NewImageCommandFlags(flags)

	c := types.NewConfig()

	mergeContainer := NewMergeConfigContainer(configFlags, globalFlags, imageFlags)
	err := mergeContainer.Merge(c)
	if err != nil {
		exitWithError(err.Error())
	}

	log.InitDefault(os.Stdout, c)

	if c.KernelPath == "" || c.BootloaderPath == "" {
		exitForCmd(cmd, "both --kernel and --bootloader are required")
	}
	return c
}
