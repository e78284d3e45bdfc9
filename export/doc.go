// Package export draws the polygons of a net onto print and preview media:
// a single-page PDF at true size (one net unit is one centimetre) and a PNG
// raster preview.
package export
