package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/helpdoc/internal/api"
	"github.com/dgallion1/helpdoc/internal/extract"
	"github.com/dgallion1/helpdoc/internal/manual"
	cli "github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the help pages over HTTP",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: a.cfg.LogLevel}))

			srv := api.NewServer(a.pages, manual.Fallback(a.pages), a.live, log, a.cfg)
			httpServer := &http.Server{
				Addr:         ":" + a.cfg.Port,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 30 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Graceful shutdown.
			go func() {
				<-ctx.Done()
				log.Info("shutting down...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				httpServer.Shutdown(shutdownCtx)
			}()

			log.Info("starting helpdoc", "port", a.cfg.Port, "pages", len(a.pages.IDs()))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server: %w", err)
			}
			return nil
		},
	}
}

func treeCmd() *cli.Command {
	return &cli.Command{
		Name:  "tree",
		Usage: "Print the help page hierarchy",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			root, err := a.pages.Root()
			if err != nil {
				return err
			}
			return printTree(os.Stdout, root, a.session())
		},
	}
}

func pageCmd() *cli.Command {
	return &cli.Command{
		Name:      "page",
		Usage:     "Print the title and body of a help page",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return fmt.Errorf("page id argument is required")
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			return printPage(os.Stdout, a.pages, id, a.session())
		},
	}
}

func messagesCmd() *cli.Command {
	return &cli.Command{
		Name:  "messages",
		Usage: "Write the translatable strings of all help pages",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			root, err := a.pages.Root()
			if err != nil {
				return err
			}
			out := bufio.NewWriter(os.Stdout)
			e := extract.New(out, a.log)
			if err := e.Tree(root, manual.Fallback(a.pages)); err != nil {
				return err
			}
			if err := out.Flush(); err != nil {
				return err
			}
			a.log.Info("messages written", "units", e.Units())
			return nil
		},
	}
}

func extractCmd() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Write the translatable strings of user guide documents",
		ArgsUsage: "<name>...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Usage: "User guide directory (default $HELPDOC_GUIDE_DIR)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			dir := cmd.String("dir")
			if dir == "" {
				dir = a.cfg.GuideDir
			}
			units, err := extractDocs(os.Stdout, dir, cmd.Args().Slice(), a.log)
			if err != nil {
				return err
			}
			a.log.Info("extraction done", "documents", cmd.Args().Len(), "units", units)
			return nil
		},
	}
}
