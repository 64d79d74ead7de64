package commands

import (
	"encoding/json"
	"io"
	"os"

	"github.com/boreq/ircstream/irc/protocol"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "encodes JSON messages read from stdin",
	Long: `Reads JSON objects in the format produced by the decode command from the
standard input and writes them to the standard output as IRC protocol lines.`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	conf, err := GetConfig()
	if err != nil {
		return err
	}
	cs, err := conf.Charset()
	if err != nil {
		return err
	}
	return encode(os.Stdin, protocol.NewEncoder(cmd.OutOrStdout(), cs))
}

func encode(r io.Reader, encoder protocol.Encoder) error {
	decoder := json.NewDecoder(r)
	for {
		var m jsonMessage
		if err := decoder.Decode(&m); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "could not decode the input")
		}
		if err := encoder.Encode(fromJSON(m)); err != nil {
			return err
		}
	}
}
