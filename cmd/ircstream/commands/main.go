package commands

import (
	"github.com/boreq/ircstream/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	configPath string
	encoding   string
	logLevel   string
)

var MainCmd = &cobra.Command{
	Use:   "ircstream",
	Short: "IRC message stream codec",
	Long: `Ircstream decodes and encodes streams of IRC protocol messages, including the
IRCv3 message tags. Received data is split into lines regardless of how it
was chunked and every line is decoded into a message.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := MainCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to the config file")
	flags.StringVar(&encoding, "encoding", "", "charset used on the wire, overrides the config file")
	flags.StringVar(&logLevel, "log-level", "", "trace, debug, info, warn, error or disabled")

	MainCmd.AddCommand(decodeCmd, encodeCmd, fuzzCmd, configCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if logLevel != "" {
		level, ok := utils.ParseLevel(logLevel)
		if !ok {
			return errors.Errorf("unknown log level %q", logLevel)
		}
		utils.SetLevel(level)
	}
	return nil
}
