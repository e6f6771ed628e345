package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arcanaland/arachne/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		// The verdict has already been printed
		if !errors.Is(err, cmd.ErrIllegalMove) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
