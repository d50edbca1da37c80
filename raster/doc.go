// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts ideal shapes into discrete pixels using integer
// arithmetic only.
//
// The package has no notion of a surface. Every rasterizer takes a
// [PlotFunc] and calls it once for each pixel it selects, in model-space
// coordinates. Whoever supplies the callback decides what a pixel is: a dot
// on an image, an entry in a slice, a character in a terminal.
//
// # Algorithms
//
//   - [Line]: generalized Bresenham covering all octants
//   - [Circle]: midpoint circle with 8-way symmetry
//
// Both are bounded loops over integers: O(max(|dx|,|dy|)) for a line and
// O(radius) for a circle. They hold no state between calls, so independent
// calls may run concurrently as long as their callbacks do not share an
// unsynchronized target.
//
// # Testing
//
// [Recorder] collects plotted points in call order, which makes rasterizer
// output easy to assert against without any rendering backend:
//
//	var rec raster.Recorder
//	raster.Line(pixgrid.Pt(0, 0), pixgrid.Pt(3, 1), rec.Plot)
//	fmt.Println(rec.Points) // [(0,0) (1,0) (2,1) (3,1)]
package raster
