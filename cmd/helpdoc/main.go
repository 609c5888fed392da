package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "helpdoc",
		Usage:       "Help page host and translatable string extractor",
		Description: "Configuration is read from the environment (PORT, HELPDOC_*, LOG_LEVEL).",
		Commands: []*cli.Command{
			serveCmd(),
			treeCmd(),
			pageCmd(),
			messagesCmd(),
			extractCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
