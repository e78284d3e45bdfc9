package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"

	"golang.org/x/text/language"

	"pyramid-net/unfold"
)

// Format selects what the command writes.
type Format string

const (
	FormatText Format = "text" // diameter line followed by the <path/> block
	FormatSVG  Format = "svg"
	FormatYAML Format = "yaml"
	FormatPDF  Format = "pdf"
	FormatPNG  Format = "png"
)

func (f Format) binary() bool {
	return f == FormatPDF || f == FormatPNG
}

var errInvalidConfig = errors.New("invalid configuration")

// Config holds everything the command line can set. Lengths are in
// centimetres.
type Config struct {
	Edge        float64 `yaml:"edge"`
	StripeWidth float64 `yaml:"stripe_width"`
	Format      Format  `yaml:"format"`
	Output      string  `yaml:"output,omitempty"`
	Scale       float64 `yaml:"scale"`
	Lang        string  `yaml:"lang,omitempty"`
	LogLevel    string  `yaml:"log_level"`
	PNGSize     int     `yaml:"png_size"`
	Force       bool    `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Edge:        10,
		StripeWidth: 1,
		Format:      FormatText,
		Scale:       unfold.DefaultScale,
		LogLevel:    "warn",
		PNGSize:     1024,
	}
}

func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.Edge, "edge", c.Edge, "pyramid edge length, cm")
	fs.Float64Var(&c.StripeWidth, "stripe", c.StripeWidth, "glue stripe width, cm")
	fs.Func("format", "output format: text, svg, yaml, pdf or png (default "+string(c.Format)+")", func(s string) error {
		c.Format = Format(s)
		return nil
	})
	fs.StringVar(&c.Output, "o", c.Output, "output file (default stdout)")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "SVG user units per cm")
	fs.StringVar(&c.Lang, "lang", c.Lang, "BCP 47 language for the diameter line of the text report")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.IntVar(&c.PNGSize, "png-size", c.PNGSize, "long side of the PNG preview, pixels")
	fs.BoolVar(&c.Force, "force", c.Force, "write PDF/PNG even when stdout is a terminal")
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatSVG, FormatYAML, FormatPDF, FormatPNG:
	default:
		return fmt.Errorf("%w: unknown format %q", errInvalidConfig, c.Format)
	}
	if !(c.Edge > 0) || math.IsInf(c.Edge, 0) {
		return fmt.Errorf("%w: edge must be a positive length, got %g", errInvalidConfig, c.Edge)
	}
	if !(c.StripeWidth > 0) || math.IsInf(c.StripeWidth, 0) {
		return fmt.Errorf("%w: stripe must be a positive length, got %g", errInvalidConfig, c.StripeWidth)
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: scale must be positive, got %g", errInvalidConfig, c.Scale)
	}
	if c.PNGSize < 16 {
		return fmt.Errorf("%w: png-size must be at least 16, got %d", errInvalidConfig, c.PNGSize)
	}
	if c.Lang != "" {
		if _, err := language.Parse(c.Lang); err != nil {
			return fmt.Errorf("%w: lang %q: %v", errInvalidConfig, c.Lang, err)
		}
	}
	return nil
}

// parseConfig reads args into a validated Config. Usage goes to stderr.
func parseConfig(args []string, stderr io.Writer) (Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("pyramid-net", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %q", errInvalidConfig, fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
