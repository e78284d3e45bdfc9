package main

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"pyramid-net/unfold"
)

// Report is the machine readable description of a net.
type Report struct {
	Config   Config          `yaml:"config"`
	Diameter float64         `yaml:"diameter"`
	Polygons []PolygonReport `yaml:"polygons"`
}

type PolygonReport struct {
	Name     string       `yaml:"name"`
	Stripe   bool         `yaml:"stripe,omitempty"`
	Area     float64      `yaml:"area"`
	Vertices [][2]float64 `yaml:"vertices,flow"`
	Path     string       `yaml:"path"`
}

func newReport(cfg Config, n *unfold.Net) Report {
	enc := unfold.Encoder{Scale: cfg.Scale}
	r := Report{Config: cfg, Diameter: n.Diameter()}
	for _, part := range n.Parts() {
		pr := PolygonReport{
			Name:   part.Name,
			Stripe: part.Stripe,
			Area:   part.Polygon.Area(),
			Path:   enc.PathData(part.Polygon),
		}
		for _, v := range part.Polygon.Points() {
			pr.Vertices = append(pr.Vertices, [2]float64{v.X, v.Y})
		}
		r.Polygons = append(r.Polygons, pr)
	}
	return r
}

func writeYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// diameterLine formats the diameter. Without a language it is the shortest
// exact representation; with one it is localized to four decimals.
func diameterLine(d float64, lang string) string {
	if lang == "" {
		return "diameter=" + strconv.FormatFloat(d, 'g', -1, 64)
	}
	p := message.NewPrinter(language.Make(lang))
	return p.Sprintf("diameter=%.4f", d)
}

// writeText writes the plain report: the diameter line, then "svg:" and one
// <path/> element per polygon.
func writeText(w io.Writer, cfg Config, n *unfold.Net) error {
	enc := unfold.Encoder{Scale: cfg.Scale}
	_, err := fmt.Fprintf(w, "%s\nsvg:\n%s\n", diameterLine(n.Diameter(), cfg.Lang), enc.RenderPaths(n.Polygons()))
	return err
}
