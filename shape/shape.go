// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shape builds compound outlines out of raster lines.
//
// Shapes are outlines only; nothing is filled. Shared vertices are plotted
// once per edge that touches them.
package shape

import (
	"github.com/gogpu/pixgrid"
	"github.com/gogpu/pixgrid/raster"
)

// Triangle rasterizes the edges p1->p2, p2->p3 and p3->p1, in that order.
// Collinear or coincident vertices are drawn as given.
func Triangle(p1, p2, p3 pixgrid.Point, plot raster.PlotFunc) {
	raster.Line(p1, p2, plot)
	raster.Line(p2, p3, plot)
	raster.Line(p3, p1, plot)
}

// Polyline rasterizes the open chain pts[0]->pts[1]->...->pts[n-1].
// A single point is plotted once; an empty slice plots nothing.
func Polyline(pts []pixgrid.Point, plot raster.PlotFunc) {
	switch len(pts) {
	case 0:
		return
	case 1:
		plot(pts[0].X, pts[0].Y)
		return
	}
	for i := 1; i < len(pts); i++ {
		raster.Line(pts[i-1], pts[i], plot)
	}
}

// Polygon rasterizes the closed outline through pts, ending with the edge
// from the last point back to the first.
func Polygon(pts []pixgrid.Point, plot raster.PlotFunc) {
	if len(pts) < 3 {
		Polyline(pts, plot)
		return
	}
	Polyline(pts, plot)
	raster.Line(pts[len(pts)-1], pts[0], plot)
}
