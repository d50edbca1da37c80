// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package canvas provides an image-backed drawing surface for the pixgrid
// rasterizers.
//
// A Canvas owns the pixels. It maps model space (origin at a logical centre,
// Y up) to device space (origin top-left, Y down) and hands out plot
// callbacks bound to a colour. The rasterizers only ever see those callbacks.
//
// The image is split into a drawing area on the left, where the axes and
// shapes go, and an optional text panel on the right.
//
// A Canvas is NOT thread-safe. Drive it from a single goroutine or
// synchronize externally.
package canvas

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixgrid"
	"github.com/gogpu/pixgrid/raster"
)

// Canvas is a pixel surface with a model-space coordinate mapping.
type Canvas struct {
	img          *image.RGBA
	drawingWidth int
	origin       image.Point
	dot          int
	background   pixgrid.Color
	axis         pixgrid.Color
}

// New creates a canvas. The image starts fully transparent; call Clear to
// paint the background and axes.
func New(opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.drawingWidth > o.width {
		o.drawingWidth = o.width
	}

	origin := image.Point{X: o.drawingWidth / 2, Y: o.height / 2}
	if o.origin != nil {
		origin = *o.origin
	}

	pixgrid.Logger().Debug("canvas: created",
		"width", o.width, "height", o.height,
		"drawingWidth", o.drawingWidth, "origin", origin.String(), "dot", o.dot)

	return &Canvas{
		img:          image.NewRGBA(image.Rect(0, 0, o.width, o.height)),
		drawingWidth: o.drawingWidth,
		origin:       origin,
		dot:          o.dot,
		background:   o.background,
		axis:         o.axis,
	}
}

// Width returns the image width, panel included.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the image height.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Origin returns the device position of model-space (0,0).
func (c *Canvas) Origin() image.Point {
	return c.origin
}

// DrawingRect returns the device rectangle of the drawing area.
func (c *Canvas) DrawingRect() image.Rectangle {
	return image.Rect(0, 0, c.drawingWidth, c.Height())
}

// PanelRect returns the device rectangle of the panel. It is empty when the
// drawing area spans the whole image.
func (c *Canvas) PanelRect() image.Rectangle {
	return image.Rect(c.drawingWidth, 0, c.Width(), c.Height())
}

// ToDevice maps a model-space point to device pixels.
func (c *Canvas) ToDevice(p pixgrid.Point) image.Point {
	return image.Point{X: c.origin.X + p.X, Y: c.origin.Y - p.Y}
}

// Plotter returns a plot callback that draws a dot of colour col for every
// model-space pixel it receives. Dots falling outside the image are dropped.
func (c *Canvas) Plotter(col pixgrid.Color) raster.PlotFunc {
	rgba := premultiply(col)
	half := c.dot / 2
	return func(x, y int) {
		if !c.nearImage(x, y) {
			return
		}
		d := c.ToDevice(pixgrid.Point{X: x, Y: y})
		c.fillRGBA(image.Rect(d.X-half, d.Y-half, d.X-half+c.dot, d.Y-half+c.dot), rgba)
	}
}

// nearImage reports whether a dot at model-space (x, y) can touch the image.
// The bounds are computed from the small image values only, so coordinates
// near the int limits are rejected before any device arithmetic overflows.
func (c *Canvas) nearImage(x, y int) bool {
	w, h := c.Width(), c.Height()
	return x >= -c.origin.X-c.dot && x <= w-c.origin.X+c.dot &&
		y >= c.origin.Y-h-c.dot && y <= c.origin.Y+c.dot
}

// Clear paints the drawing area with the background colour and draws the
// X and Y axes through the origin. The panel is left untouched.
func (c *Canvas) Clear() {
	r := c.DrawingRect()
	draw.Draw(c.img, r, image.NewUniform(c.background.NRGBA()), image.Point{}, draw.Src)

	// Axes are one device pixel wide and drawn in device space.
	axis := c.devicePlotter(c.axis)
	raster.Line(pixgrid.Pt(r.Min.X, c.origin.Y), pixgrid.Pt(r.Max.X-1, c.origin.Y), axis)
	raster.Line(pixgrid.Pt(c.origin.X, r.Min.Y), pixgrid.Pt(c.origin.X, r.Max.Y-1), axis)
}

// At returns the colour of the device pixel (x, y).
func (c *Canvas) At(x, y int) pixgrid.Color {
	return pixgrid.FromColor(c.img.RGBAAt(x, y))
}

// Image returns the backing image. Drawing on the canvas afterwards is
// visible through the returned value.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Snapshot returns a copy of the current image.
func (c *Canvas) Snapshot() *image.RGBA {
	img := image.NewRGBA(c.img.Rect)
	copy(img.Pix, c.img.Pix)
	return img
}

// Scaled returns a copy of the image enlarged by an integer factor with
// nearest-neighbour sampling, so every grid pixel stays a crisp square.
// Factors below 2 return a plain copy.
func (c *Canvas) Scaled(factor int) *image.RGBA {
	if factor < 2 {
		return c.Snapshot()
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.Width()*factor, c.Height()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes the image as PNG, scaled by factor.
func (c *Canvas) EncodePNG(w io.Writer, factor int) error {
	return png.Encode(w, c.Scaled(factor))
}

// SavePNG saves the image to a PNG file, scaled by factor.
func (c *Canvas) SavePNG(path string, factor int) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return c.EncodePNG(f, factor)
}

// devicePlotter returns a plot callback that writes single device pixels
// without any coordinate mapping.
func (c *Canvas) devicePlotter(col pixgrid.Color) raster.PlotFunc {
	rgba := premultiply(col)
	return func(x, y int) {
		if (image.Point{X: x, Y: y}).In(c.img.Rect) {
			c.img.SetRGBA(x, y, rgba)
		}
	}
}

// fillRGBA overwrites r, clipped to the image, with a solid colour.
func (c *Canvas) fillRGBA(r image.Rectangle, col color.RGBA) {
	r = r.Intersect(c.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.img.SetRGBA(x, y, col)
		}
	}
}

func premultiply(c pixgrid.Color) color.RGBA {
	return color.RGBAModel.Convert(c.NRGBA()).(color.RGBA)
}
