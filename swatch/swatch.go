// Package swatch writes palettes out as PNG swatch grids for visual
// inspection.
package swatch

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/pkg/errors"

	"github.com/mmuldo/prism/colorspace"
)

// perRow is the number of cells per grid row.
const perRow = 4

// Grid renders the colors as filled square cells, perRow per row, each cell
// pixels on a side.
func Grid(colors []colorspace.RGB, cell int) *image.RGBA {
	rows := (len(colors) + perRow - 1) / perRow
	if rows == 0 {
		rows = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, perRow*cell, rows*cell))

	x, y := 0, 0
	for _, c := range colors {
		fill := color.RGBA{channel(c.R), channel(c.G), channel(c.B), 255}
		for w := x; w-x < cell; w++ {
			for h := y; h-y < cell; h++ {
				img.Set(w, h, fill)
			}
		}
		x = (x + cell) % (perRow * cell)
		if x == 0 {
			y += cell
		}
	}

	return img
}

// WritePNG encodes the swatch grid to a PNG file at path.
func WritePNG(path string, colors []colorspace.RGB, cell int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "swatch: creating output file")
	}
	defer f.Close()

	if err := png.Encode(f, Grid(colors, cell)); err != nil {
		return errors.Wrap(err, "swatch: encoding png")
	}

	return nil
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
