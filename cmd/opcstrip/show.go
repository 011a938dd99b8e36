package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coreman2200/opcstrip/internal/app"
	"github.com/coreman2200/opcstrip/internal/config"
	"github.com/coreman2200/opcstrip/internal/render"
)

type showOptions struct {
	pattern patternFlags
	frames  int
	columns int
	hex     bool
}

func newShowCmd(root *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the first frames of a pattern without driving a strip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, root, opts)
		},
	}

	opts.pattern.bind(cmd)
	cmd.Flags().IntVar(&opts.frames, "frames", 1, "Number of frames to print")
	cmd.Flags().IntVar(&opts.columns, "columns", 32, "Pixels per output row")
	cmd.Flags().BoolVar(&opts.hex, "hex", false, "Print color hexes instead of swatches")

	return cmd
}

func runShow(cmd *cobra.Command, root *rootFlags, opts *showOptions) error {
	cfg, err := loadConfig(root.configPath)
	if err != nil {
		return err
	}
	opts.pattern.apply(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if opts.columns <= 0 {
		return fmt.Errorf("--columns must be positive, got %d", opts.columns)
	}

	pat, err := app.New(cfg, zerolog.Nop()).BuildPattern()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := lipgloss.NewRenderer(out)
	header := r.NewStyle().Bold(true)
	for i := 0; i < opts.frames; i++ {
		fmt.Fprintln(out, header.Render(fmt.Sprintf("frame %d", i)))
		writeFrame(out, r, pat.Advance(), opts.columns, opts.hex)
	}
	return nil
}

func writeFrame(w io.Writer, r *lipgloss.Renderer, frame render.Frame, columns int, hex bool) {
	if len(frame) == 0 {
		fmt.Fprintln(w, "(empty)")
		return
	}
	for start := 0; start < len(frame); start += columns {
		row := frame[start:min(start+columns, len(frame))]
		cells := make([]string, len(row))
		for i, c := range row {
			if hex {
				cells[i] = hexString(c)
				continue
			}
			cells[i] = r.NewStyle().Background(lipgloss.Color(hexString(c))).Render("  ")
		}
		sep := ""
		if hex {
			sep = " "
		}
		fmt.Fprintln(w, strings.Join(cells, sep))
	}
}

func hexString(c render.Color) string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
