package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/osdev-tools/bootimage/types"
	"github.com/spf13/pflag"
)

// ConfigCommandFlags handles config file path flag and build configuration from the file
type ConfigCommandFlags struct {
	Config string
}

// MergeToConfig reads a json configuration file
func (flags *ConfigCommandFlags) MergeToConfig(c *types.Config) (err error) {
	if flags.Config != "" {
		var data []byte

		data, err = os.ReadFile(flags.Config)
		if err != nil {
			err = fmt.Errorf("error reading config: %v", err)
			return
		}

		err = json.Unmarshal(data, c)
		if err != nil {
			err = fmt.Errorf("error config: %v", err)
			return
		}

		return
	}

	return mergeDefaultConfig(c)
}

// mergeDefaultConfig reads the default config file from
// BOOTIMAGE_DEFAULT_CONFIG or the home directory when present.
func mergeDefaultConfig(c *types.Config) error {
	conf := os.Getenv("BOOTIMAGE_DEFAULT_CONFIG")
	if conf == "" {
		usr, err := user.Current()
		if err != nil {
			return nil
		}
		conf = usr.HomeDir + "/.bootimagerc"
		if _, err = os.Stat(conf); err != nil {
			return nil
		}
	}

	data, err := os.ReadFile(conf)
	if err != nil {
		return fmt.Errorf("error reading config: %v", err)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("error config: %v", err)
	}
	return nil
}

// NewConfigCommandFlags returns an instance of ConfigCommandFlags
func NewConfigCommandFlags(cmdFlags *pflag.FlagSet) (flags *ConfigCommandFlags) {
	flags = &ConfigCommandFlags{}

	flags.Config, _ = cmdFlags.GetString("config")
	flags.Config = strings.TrimSpace(flags.Config)

	return flags
}

// PersistConfigCommandFlags append config flag to a command
func PersistConfigCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.StringP("config", "c", "", "bootimage config file")
}
