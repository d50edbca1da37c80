// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"image"

	"github.com/gogpu/pixgrid"
)

// Default layout, matching an 800x800 drawing area with a 400 pixel command
// panel on the right.
const (
	DefaultWidth        = 1200
	DefaultHeight       = 800
	DefaultDrawingWidth = 800
	DefaultDotSize      = 2
)

// Option configures a Canvas during creation.
//
// Example:
//
//	// Default 1200x800 window, origin at (400,400)
//	cv := canvas.New()
//
//	// Small canvas without a panel, 1 pixel dots
//	cv := canvas.New(canvas.WithSize(64, 64), canvas.WithDrawingWidth(64), canvas.WithDotSize(1))
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	width, height int
	drawingWidth  int
	origin        *image.Point
	dot           int
	background    pixgrid.Color
	axis          pixgrid.Color
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		width:        DefaultWidth,
		height:       DefaultHeight,
		drawingWidth: DefaultDrawingWidth,
		origin:       nil, // Centre of the drawing area if nil
		dot:          DefaultDotSize,
		background:   pixgrid.Background,
		axis:         pixgrid.Axis,
	}
}

// WithSize sets the full image size, panel included.
// Non-positive values keep the default.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithDrawingWidth sets the width of the drawing area on the left of the
// image. The rest of the image is the panel. A width equal to the image width
// leaves no panel.
func WithDrawingWidth(width int) Option {
	return func(o *options) {
		if width > 0 {
			o.drawingWidth = width
		}
	}
}

// WithOrigin sets the device position of model-space (0,0).
func WithOrigin(x, y int) Option {
	return func(o *options) {
		o.origin = &image.Point{X: x, Y: y}
	}
}

// WithDotSize sets the side of the square drawn for each plotted pixel.
func WithDotSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.dot = n
		}
	}
}

// WithBackground sets the drawing area background colour.
func WithBackground(c pixgrid.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithAxisColor sets the colour of the X and Y axes.
func WithAxisColor(c pixgrid.Color) Option {
	return func(o *options) {
		o.axis = c
	}
}
