// Command pyramid-net prints the net of a regular triangular pyramid with
// glue stripes, as SVG paths, a YAML report, a true-size PDF or a PNG
// preview.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"pyramid-net/export"
	"pyramid-net/unfold"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "pyramid-net: %v\n", err)
		return 2
	}

	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "pyramid-net: %v\n", err)
		return 2
	}
	defer logger.Sync()

	net, err := unfold.BuildNet(cfg.Edge, cfg.StripeWidth, unfold.WithLogger(logger))
	if err != nil {
		logger.Error("cannot build net", zap.Error(err))
		return 1
	}
	logger.Info("net built",
		zap.Float64("edge", cfg.Edge),
		zap.Float64("stripe_width", cfg.StripeWidth),
		zap.Int("polygons", len(net.Polygons())),
		zap.Float64("diameter", net.Diameter()))

	out, closeOut, err := openOutput(cfg, stdout)
	if err != nil {
		logger.Error("cannot open output", zap.Error(err))
		return 1
	}
	err = emit(out, cfg, net)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Error("cannot write output", zap.String("format", string(cfg.Format)), zap.Error(err))
		return 1
	}
	return 0
}

var errTerminal = errors.New("refusing to write binary output to a terminal (use -o or -force)")

// openOutput returns the destination for cfg and a function closing it.
func openOutput(cfg Config, stdout io.Writer) (io.Writer, func() error, error) {
	if cfg.Output == "" {
		if f, ok := stdout.(*os.File); ok && cfg.Format.binary() && !cfg.Force && term.IsTerminal(int(f.Fd())) {
			return nil, nil, errTerminal
		}
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func emit(w io.Writer, cfg Config, n *unfold.Net) error {
	switch cfg.Format {
	case FormatText:
		return writeText(w, cfg, n)
	case FormatSVG:
		enc := unfold.Encoder{Scale: cfg.Scale}
		return enc.WriteDocument(w, n.Faces(), n.Stripes, cfg.Scale)
	case FormatYAML:
		return writeYAML(w, newReport(cfg, n))
	case FormatPDF:
		return export.WritePDF(w, n.Faces(), n.Stripes)
	case FormatPNG:
		return export.WritePNG(w, n.Faces(), n.Stripes, export.WithSize(cfg.PNGSize))
	}
	return fmt.Errorf("%w: unknown format %q", errInvalidConfig, cfg.Format)
}
