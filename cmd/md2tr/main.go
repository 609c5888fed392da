// Command md2tr writes the translatable strings of user guide documents.
//
// Usage:
//
//	md2tr NAME...
//
// Each NAME is a document in the current directory; a name without a file
// extension refers to NAME.md. Every text unit becomes one _("...") line on
// standard output, in document order. The first document that cannot be read
// or parsed stops the run with exit status 1.
package main

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/dgallion1/helpdoc/internal/config"
	"github.com/dgallion1/helpdoc/internal/extract"
	"github.com/dgallion1/helpdoc/internal/userguide"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run extracts the named documents and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	out := bufio.NewWriter(stdout)
	e := extract.New(out, log)
	err := e.Run(args, userguide.Locator{Dir: "."}.Open)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		log.Error("extraction failed", "error", err)
		return 1
	}
	log.Debug("extraction done", "documents", len(args), "units", e.Units())
	return 0
}
