package commands

import (
	"fmt"

	"github.com/boreq/ircstream/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "prints the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := GetConfig()
		if err != nil {
			return err
		}
		if _, err := conf.FramerOptions(); err != nil {
			return err
		}
		path := configPath
		if path == "" {
			path = config.GetConfigPath()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)
		return conf.Write(cmd.OutOrStdout())
	},
}
