package main

import (
	"fmt"
	"os"

	"github.com/boreq/ircstream/cmd/ircstream/commands"
)

func main() {
	if err := commands.MainCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
