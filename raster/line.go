// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/gogpu/pixgrid"

// Line plots every pixel of the segment p0-p1, both endpoints included,
// walking from p0 towards p1.
//
// The error term is updated with the x step first and the y step second, and
// a tie (2*err equal to dy or dx) takes the step. This fixes the pixel choice
// for every octant. If p0 == p1 exactly one pixel is plotted.
func Line(p0, p1 pixgrid.Point, plot PlotFunc) {
	x, y := p0.X, p0.Y

	dx := abs(p1.X - x)
	sx := -1
	if x < p1.X {
		sx = 1
	}
	dy := -abs(p1.Y - y)
	sy := -1
	if y < p1.Y {
		sy = 1
	}
	err := dx + dy

	// Each pass advances x, y or both by one unit towards p1, so the loop
	// ends after at most max(dx, -dy)+1 plots.
	for steps := max(dx, -dy); steps >= 0; steps-- {
		plot(x, y)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// SymmetricLine plots the same pixel set for (p0, p1) and (p1, p0).
//
// Line resolves exact midpoint ties in the direction of travel, so reversing
// the endpoints of a segment that crosses a midpoint selects a different
// pixel there. SymmetricLine always walks from the endpoint that is smaller
// by (X, Y) ordering; the pixels are reported in that walk order.
func SymmetricLine(p0, p1 pixgrid.Point, plot PlotFunc) {
	if p1.X < p0.X || (p1.X == p0.X && p1.Y < p0.Y) {
		p0, p1 = p1, p0
	}
	Line(p0, p1, plot)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
