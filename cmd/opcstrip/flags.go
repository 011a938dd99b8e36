package main

import (
	"github.com/spf13/cobra"

	"github.com/coreman2200/opcstrip/internal/config"
)

// patternFlags are shared by run and show. Only flags the user set override
// the config file.
type patternFlags struct {
	name      string
	color     string
	colorList []string
	speed     int
	width     int
	strobe    bool
	numLEDs   int
}

func (f *patternFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.name, "pattern", "p", "", "Pattern name (see 'opcstrip list')")
	fs.StringVar(&f.color, "color", "", "Color hex for solid_color, e.g. #FF8800")
	fs.StringSliceVar(&f.colorList, "color-list", nil, "Comma separated color hexes for stripes, scroll and fade")
	fs.IntVar(&f.speed, "speed", 0, "Frames per second for dynamic patterns and strobe")
	fs.IntVar(&f.width, "width", 0, "Stripe width in LEDs")
	fs.BoolVar(&f.strobe, "strobe", false, "Alternate pattern frames with blackout frames")
	fs.IntVarP(&f.numLEDs, "num-leds", "n", 0, "Number of LEDs on the strip")
}

func (f *patternFlags) apply(cmd *cobra.Command, c *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("pattern") {
		c.Pattern.Name = f.name
	}
	if fs.Changed("color") {
		c.Pattern.Color = f.color
	}
	if fs.Changed("color-list") {
		c.Pattern.ColorList = f.colorList
	}
	if fs.Changed("speed") {
		speed := f.speed
		c.Pattern.Speed = &speed
	}
	if fs.Changed("width") {
		width := f.width
		c.Pattern.Width = &width
	}
	if fs.Changed("strobe") {
		c.Pattern.Strobe = f.strobe
	}
	if fs.Changed("num-leds") {
		c.NumLEDs = f.numLEDs
	}
}

// loadConfig reads the config file when one is given, otherwise starts from
// the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
