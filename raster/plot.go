// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/gogpu/pixgrid"

// PlotFunc receives one model-space pixel from a rasterizer.
//
// Implementations must tolerate being called several times with the same
// coordinate.
type PlotFunc func(x, y int)

// Recorder collects plotted pixels in the order they were reported.
//
// The zero value is ready to use. A Recorder is not safe for concurrent use;
// give each goroutine its own.
type Recorder struct {
	Points []pixgrid.Point
}

// Plot appends (x, y). It has the PlotFunc signature, so rec.Plot can be
// passed directly to a rasterizer.
func (r *Recorder) Plot(x, y int) {
	r.Points = append(r.Points, pixgrid.Point{X: x, Y: y})
}

// Len returns the number of plot calls, duplicates included.
func (r *Recorder) Len() int {
	return len(r.Points)
}

// Reset discards recorded points but keeps the backing storage.
func (r *Recorder) Reset() {
	r.Points = r.Points[:0]
}

// Set returns the distinct recorded points.
func (r *Recorder) Set() map[pixgrid.Point]struct{} {
	set := make(map[pixgrid.Point]struct{}, len(r.Points))
	for _, p := range r.Points {
		set[p] = struct{}{}
	}
	return set
}

// Counting wraps plot and returns a pointer to the number of calls made
// through the wrapper.
func Counting(plot PlotFunc) (PlotFunc, *int) {
	n := new(int)
	return func(x, y int) {
		*n++
		plot(x, y)
	}, n
}
