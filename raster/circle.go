// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/gogpu/pixgrid"

// Circle plots the outline of the circle with the given center and radius.
//
// One octant is walked from (0, r) with the midpoint decision variable and
// every step is mirrored into all eight octants. Points on the axes and on
// the diagonals are reported more than once; r == 0 reports the center eight
// times.
//
// A negative radius plots nothing. Use [CheckRadius] to reject it up front.
func Circle(center pixgrid.Point, r int, plot PlotFunc) {
	if r < 0 {
		pixgrid.Logger().Warn("raster: circle with negative radius ignored",
			"center", center.String(), "radius", r)
		return
	}

	x, y := 0, r
	p := 1 - r
	plotOctants(center, x, y, plot)

	for x < y {
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*x + 1 - 2*y
		}
		plotOctants(center, x, y, plot)
	}
}

// CheckRadius returns pixgrid.ErrNegativeRadius if r cannot be passed to
// Circle.
func CheckRadius(r int) error {
	if r < 0 {
		return pixgrid.ErrNegativeRadius
	}
	return nil
}

// plotOctants reports (x, y) mirrored into the eight octants around c.
func plotOctants(c pixgrid.Point, x, y int, plot PlotFunc) {
	plot(c.X+x, c.Y+y)
	plot(c.X-x, c.Y+y)
	plot(c.X+x, c.Y-y)
	plot(c.X-x, c.Y-y)
	plot(c.X+y, c.Y+x)
	plot(c.X-y, c.Y+x)
	plot(c.X+y, c.Y-x)
	plot(c.X-y, c.Y-x)
}
