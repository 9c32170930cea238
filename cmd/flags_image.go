package cmd

import (
	"github.com/osdev-tools/bootimage/types"
	"github.com/spf13/pflag"
)

// ImageCommandFlags consolidates all command flags that locate image inputs and output in one struct
type ImageCommandFlags struct {
	BootloaderPath string
	KernelPath     string
	Output         string
}

// MergeToConfig overrides configuration passed by argument with command flags values
func (flags *ImageCommandFlags) MergeToConfig(c *types.Config) (err error) {
	if flags.BootloaderPath != "" {
		c.BootloaderPath = flags.BootloaderPath
	}

	if flags.KernelPath != "" {
		c.KernelPath = flags.KernelPath
	}

	if flags.Output != "" {
		c.Output = flags.Output
	}

	return
}

// NewImageCommandFlags returns an instance of ImageCommandFlags
func NewImageCommandFlags(cmdFlags *pflag.FlagSet) (flags *ImageCommandFlags) {
	flags = &ImageCommandFlags{}

	flags.BootloaderPath, _ = cmdFlags.GetString("bootloader")
	flags.KernelPath, _ = cmdFlags.GetString("kernel")
	flags.Output, _ = cmdFlags.GetString("output")

	return flags
}

// PersistImageCommandFlags append image input/output flags to a command
func PersistImageCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.StringP("bootloader", "b", "", "prebuilt bootloader ELF executable")
	cmdFlags.StringP("kernel", "k", "", "prebuilt kernel executable")
	cmdFlags.StringP("output", "o", "", "disk image output path")
}
