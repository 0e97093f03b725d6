// Package main es el punto de entrada de leadctl.
package main

import (
	"context"
	"fmt"
	"os"

	"pet-insurance-leads/internal/cli"
)

// version se fija en build con -ldflags.
var version = "dev"

func main() {
	root := cli.NewRootCommand(cli.Options{Version: version})
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
