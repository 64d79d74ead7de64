package commands

import (
	"encoding/json"
	"io"
	"os"

	"github.com/boreq/ircstream/irc/protocol"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "decodes IRC messages read from stdin",
	Long: `Reads a stream of IRC protocol lines from the standard input and prints
every decoded message as a JSON object on a separate line.`,
	Args: cobra.NoArgs,
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	conf, err := GetConfig()
	if err != nil {
		return err
	}
	options, err := conf.FramerOptions()
	if err != nil {
		return err
	}
	return decode(cmd.OutOrStdout(), protocol.NewDecoder(os.Stdin, options...))
}

func decode(w io.Writer, decoder protocol.Decoder) error {
	encoder := json.NewEncoder(w)
	for {
		msg, err := decoder.Decode()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "could not read the input")
		}
		if err := encoder.Encode(toJSON(msg)); err != nil {
			return errors.Wrap(err, "could not write the output")
		}
	}
}
