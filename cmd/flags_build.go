package cmd

import (
	"github.com/osdev-tools/bootimage/types"
	"github.com/spf13/pflag"
)

// BuildCommandFlags consolidates all command flags required to compile the kernel in one struct
type BuildCommandFlags struct {
	CargoArgs    []string
	ManifestPath string
	Release      bool
	Target       string
}

// MergeToConfig overrides configuration passed by argument with command flags values
func (flags *BuildCommandFlags) MergeToConfig(c *types.Config) (err error) {
	if flags.ManifestPath != "" {
		c.ManifestPath = flags.ManifestPath
	}

	if flags.Target != "" {
		c.Target = flags.Target
	}

	if flags.Release {
		c.Release = true
	}

	if c.Args != nil {
		c.Args = append(c.Args, flags.CargoArgs...)
	} else {
		c.Args = flags.CargoArgs
	}

	return
}

// NewBuildCommandFlags returns an instance of BuildCommandFlags
func NewBuildCommandFlags(cmdFlags *pflag.FlagSet) (flags *BuildCommandFlags) {
	flags = &BuildCommandFlags{}

	flags.CargoArgs, _ = cmdFlags.GetStringArray("cargo-args")
	flags.ManifestPath, _ = cmdFlags.GetString("manifest-path")
	flags.Release, _ = cmdFlags.GetBool("release")
	flags.Target, _ = cmdFlags.GetString("target")

	return flags
}

// PersistBuildCommandFlags append kernel build flags to a command
func PersistBuildCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.StringArrayP("cargo-args", "a", nil, "extra arguments passed through to the kernel build")
	cmdFlags.String("manifest-path", "", "path of the kernel crate manifest")
	cmdFlags.Bool("release", false, "compile the kernel with optimizations")
	cmdFlags.StringP("target", "t", "", "kernel target specification")
}
