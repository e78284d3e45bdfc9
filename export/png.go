package export

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"pyramid-net/unfold"
)

// WritePNG renders a preview: stripes filled, every outline stroked, the net
// the right way up.
func WritePNG(w io.Writer, faces, stripes []*unfold.Polygon, opts ...Option) error {
	cfg := newConfig(opts)
	faces, stripes = nonNil(faces), nonNil(stripes)

	fr, err := fitFrame(nonNil(faces, stripes), cfg.size, cfg.margin, true)
	if err != nil {
		return err
	}

	dc := gg.NewContext(int(math.Round(fr.width)), int(math.Round(fr.height)))
	defer dc.Close()
	dc.ClearWithColor(gg.FromColor(colornames.White))

	dc.SetColor(colornames.Lightsteelblue)
	for _, p := range stripes {
		fr.trace(dc, p)
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("export png: fill: %w", err)
		}
	}

	dc.SetColor(colornames.Black)
	dc.SetLineWidth(cfg.lineWidth * 2)
	for _, p := range nonNil(stripes, faces) {
		fr.trace(dc, p)
		dc.ClosePath()
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("export png: stroke: %w", err)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	return nil
}
