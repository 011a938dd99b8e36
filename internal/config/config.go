package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/opcstrip/internal/pattern"
	"github.com/coreman2200/opcstrip/internal/render"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Human bool   `yaml:"human"`
}

// Pattern names a registered pattern and carries its options inline.
type Pattern struct {
	Name            string `yaml:"name" validate:"required"`
	pattern.Options `yaml:",inline"`
}

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0, empty picks the first port
	SpeedHz int    `yaml:"speed_hz"` // e.g. 2400000
}

type Preview struct {
	Addr string `yaml:"addr"`
}

// Power limits what physical outputs (opc, spi) are asked to draw.
type Power struct {
	Brightness      float64 `yaml:"brightness" validate:"gte=0,lte=1"`
	WhiteCap        float64 `yaml:"white_cap" validate:"gte=0,lte=3"`
	ChanMilliamps   float64 `yaml:"chan_ma" validate:"gte=0"`
	BudgetMilliamps float64 `yaml:"budget_ma" validate:"gte=0"`
}

type Config struct {
	Driver   string `yaml:"driver" validate:"required,oneof=opc sim spi preview term"`
	Address  string `yaml:"address,omitempty" validate:"required_if=Driver opc"`
	NumLEDs  int    `yaml:"num_leds" validate:"gte=0"`
	FadeInMs int    `yaml:"fade_in_ms" validate:"gte=0"`

	Log     Log     `yaml:"log"`
	Pattern Pattern `yaml:"pattern"`
	Power   Power   `yaml:"power,omitempty"`
	SPI     SPI     `yaml:"spi,omitempty"`
	Preview Preview `yaml:"preview,omitempty"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Driver:   "opc",
		Address:  "localhost:7890",
		NumLEDs:  pattern.DefaultNumLEDs,
		FadeInMs: 500,
		Log:      Log{Level: "info"},
		Pattern:  Pattern{Name: "off"},
		Power:    Power{Brightness: 1, ChanMilliamps: 20},
		SPI:      SPI{SpeedHz: 2400000},
		Preview:  Preview{Addr: ":8080"},
	}
}

// FadeIn is the pause between blanking the strip and the first pattern frame.
func (c *Config) FadeIn() time.Duration {
	return time.Duration(c.FadeInMs) * time.Millisecond
}

// Load reads path over Default and validates the result. Keys missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, &ParseError{Path: path, Line: extractLine(err), Err: err}
	}
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Limiter converts the power section for the render package.
func (p Power) Limiter() render.Limiter {
	return render.Limiter{
		Brightness:      p.Brightness,
		WhiteCap:        p.WhiteCap,
		ChanMilliamps:   p.ChanMilliamps,
		BudgetMilliamps: p.BudgetMilliamps,
	}
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, err := fmt.Sscanf(matches[1], "%d", &line); err != nil {
		return 0
	}
	return line
}
