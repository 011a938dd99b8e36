package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/coreman2200/opcstrip/internal/app"
	"github.com/coreman2200/opcstrip/internal/config"
	"github.com/coreman2200/opcstrip/internal/logger"
)

type runOptions struct {
	pattern  patternFlags
	driver   string
	address  string
	fadeInMs int
}

func newRunCmd(root *rootFlags) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play a pattern until interrupted",
		Long: `Play a pattern on the configured output. Static patterns are pushed once;
dynamic patterns keep running until SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, root, opts)
		},
	}

	opts.pattern.bind(cmd)
	cmd.Flags().StringVarP(&opts.driver, "driver", "d", "", "Output driver: opc, sim, spi, preview or term")
	cmd.Flags().StringVarP(&opts.address, "address", "a", "", "OPC server host[:port]")
	cmd.Flags().IntVar(&opts.fadeInMs, "fade-in-ms", 0, "Pause after blanking the strip, in milliseconds")

	return cmd
}

func runRun(cmd *cobra.Command, root *rootFlags, opts *runOptions) error {
	cfg, err := loadConfig(root.configPath)
	if err != nil {
		return err
	}
	opts.pattern.apply(cmd, cfg)
	if cmd.Flags().Changed("driver") {
		cfg.Driver = opts.driver
	}
	if cmd.Flags().Changed("address") {
		cfg.Address = opts.address
	}
	if cmd.Flags().Changed("fade-in-ms") {
		cfg.FadeInMs = opts.fadeInMs
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	log, err := newLogger(cmd.ErrOrStderr(), cfg, root.verbose)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.New(cfg, log).Run(ctx)
}

func newLogger(w io.Writer, cfg *config.Config, verbose bool) (zerolog.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	tty := isTerminal(w)
	// the terminal sink owns the screen
	if cfg.Driver == "term" && tty {
		w = io.Discard
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Human || tty,
		Writer:        w,
	})
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
