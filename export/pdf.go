package export

import (
	"fmt"
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"pyramid-net/unfold"
)

// PointsPerCentimetre converts net units to PDF points.
const PointsPerCentimetre = 72 / 2.54

// WritePDF writes a single-page PDF holding the outlines of faces and
// stripes at true size. The page is cropped to the net plus the margin.
func WritePDF(w io.Writer, faces, stripes []*unfold.Polygon, opts ...Option) error {
	cfg := newConfig(opts)
	faces, stripes = nonNil(faces), nonNil(stripes)

	fr, err := newFrame(nonNil(faces, stripes), PointsPerCentimetre, cfg.margin, false)
	if err != nil {
		return err
	}

	page, err := document.WriteSinglePage(w, &pdf.Rectangle{URx: fr.width, URy: fr.height}, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	page.SetLineWidth(cfg.lineWidth)
	for _, p := range stripes {
		fr.trace(page, p)
		page.CloseAndStroke()
	}
	for _, p := range faces {
		fr.trace(page, p)
		page.CloseAndStroke()
	}
	if err := page.Close(); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return nil
}
