package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"foldercolor/internal/catalog"
	"foldercolor/internal/config"
	"foldercolor/internal/errors"
	"foldercolor/internal/log"
	"foldercolor/internal/papirus"
	"foldercolor/internal/tui"
	"foldercolor/internal/tui/styles"
	"foldercolor/pkg/types"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errUnexpected = errors.New("unexpected failure")

// session is what the root command needs from the outside world.
type session struct {
	isTerminal func() bool
	run        func(ctx context.Context, opts tui.Options) (tui.Result, error)
}

func defaultSession() session {
	return session{
		isTerminal: stdioIsTerminal,
		run:        tui.Run,
	}
}

func stdioIsTerminal() bool {
	tty := func(fd uintptr) bool {
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return tty(os.Stdin.Fd()) && tty(os.Stdout.Fd())
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultSession())
}

func newRootCmd(s session) *cobra.Command {
	return &cobra.Command{
		Use:   "foldercolor",
		Short: "Pick the Papirus folder color interactively",
		Long: `foldercolor lists the Papirus folder colors, marks the one in use and
applies the one you pick with papirus-folders.

Settings are read from $XDG_CONFIG_HOME/foldercolor/config.yaml
(or the file named by FOLDERCOLOR_CONFIG).`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, s)
		},
	}
}

func runPicker(cmd *cobra.Command, s session) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v. Using default settings.\n", err)
		cfg = config.New()
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open log file: %v\n", err)
	}
	defer closeLog()

	if !s.isTerminal() {
		return errors.New("foldercolor needs an interactive terminal")
	}

	cat, err := catalog.Default()
	if err != nil {
		log.LogError(err, "invalid folder color catalog")
		return err
	}
	styles.Use(cfg.UI.Theme)

	client := papirus.New(cfg)
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.LogWithFields(
		log.F("tool", client.Tool),
		log.F("theme", client.Theme),
		log.F("sudo", client.Sudo),
	).Info("starting picker")

	res, err := s.run(ctx, tui.Options{
		Catalog: cat,
		Querier: client,
		Applier: client,
	})
	if err != nil {
		log.LogError(err, "picker failed")
		return errUnexpected
	}

	if res.Outcome == types.OutcomeApplied {
		fmt.Fprintf(cmd.OutOrStdout(), "Folder color set to %s\n", res.Applied)
	}
	return nil
}

// setupLogging points the logger at the configured file. The returned func
// closes it and is always safe to call.
func setupLogging(cfg *config.Config) (func(), error) {
	noop := func() {}
	log.SetDebug(cfg.Log.Debug)
	if cfg.Log.File == "" {
		return noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
		return noop, err
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return noop, err
	}

	opts := []log.Option{log.WithOutput(f)}
	if cfg.Log.JSON {
		opts = append(opts, log.WithJSON())
	}
	log.Configure(opts...)

	return func() {
		log.Configure(log.WithOutput(io.Discard))
		f.Close()
	}, nil
}
