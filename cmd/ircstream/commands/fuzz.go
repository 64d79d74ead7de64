package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/boreq/ircstream/irc/protocol/random"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var fuzzCount int

var fuzzCmd = &cobra.Command{
	Use:   "fuzz [seed]",
	Short: "checks that random messages survive encoding and decoding",
	Long: `Generates random messages, encodes and decodes them and compares the result
with the original. The seed defaults to the current time and is printed so
that a failure can be reproduced.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFuzz,
}

func init() {
	fuzzCmd.Flags().IntVar(&fuzzCount, "count", 100000, "number of messages to check")
}

func runFuzz(cmd *cobra.Command, args []string) error {
	seed := time.Now().UnixNano()
	if len(args) > 0 {
		s, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid seed")
		}
		seed = s
	}

	if err := random.Check(seed, fuzzCount); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "FAIL: seed %d\n", seed)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "PASS: %d messages, seed %d\n", fuzzCount, seed)
	return nil
}
