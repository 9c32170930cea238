package cmd_test

import (
	"testing"

	"github.com/osdev-tools/bootimage/cmd"
	"github.com/osdev-tools/bootimage/types"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func newBuildFlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("test", 0)
	cmd.PersistBuildCommandFlags(flagSet)
	return flagSet
}

func TestCreateBuildFlags(t *testing.T) {
	flagSet := newBuildFlagSet()

	flagSet.Set("manifest-path", "kernel/Cargo.toml")
	flagSet.Set("target", "x86_64-kernel")
	flagSet.Set("release", "true")
	flagSet.Set("cargo-args", "--features=test")

	buildFlags := cmd.NewBuildCommandFlags(flagSet)

	assert.Equal(t, buildFlags.ManifestPath, "kernel/Cargo.toml")
	assert.Equal(t, buildFlags.Target, "x86_64-kernel")
	assert.Equal(t, buildFlags.Release, true)
	assert.Equal(t, buildFlags.CargoArgs, []string{"--features=test"})
}

func TestBuildFlagsMergeToConfig(t *testing.T) {
	flagSet := newBuildFlagSet()

	flagSet.Set("manifest-path", "kernel/Cargo.toml")
	flagSet.Set("release", "true")

	buildFlags := cmd.NewBuildCommandFlags(flagSet)

	c := types.NewConfig()
	c.Args = []string{"--verbose"}

	err := buildFlags.MergeToConfig(c)

	assert.Nil(t, err)
	assert.Equal(t, c.ManifestPath, "kernel/Cargo.toml")
	assert.Equal(t, c.Release, true)
	assert.Equal(t, c.Args, []string{"--verbose"})
}

func TestBuildFlagsDoNotOverrideConfigWhenUnset(t *testing.T) {
	flagSet := newBuildFlagSet()

	buildFlags := cmd.NewBuildCommandFlags(flagSet)

	c := types.NewConfig()
	c.ManifestPath = "from-config/Cargo.toml"
	c.Target = "from-config-target"

	err := buildFlags.MergeToConfig(c)

	assert.Nil(t, err)
	assert.Equal(t, c.ManifestPath, "from-config/Cargo.toml")
	assert.Equal(t, c.Target, "from-config-target")
}
