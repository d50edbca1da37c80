// Package pixgrid provides integer geometry for drawing on a discrete pixel grid.
//
// # Overview
//
// pixgrid is a small Pure Go library of classical incremental rasterization
// algorithms. The root package holds the value types (Point, Color) and the
// point transforms. The algorithms live in sub-packages:
//
//   - raster: Bresenham lines and midpoint circles
//   - shape: triangles, polygons and polylines built from lines
//   - canvas: an image-backed surface that maps model space to device space
//   - session: keyboard-style command dispatch over a canvas
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pixgrid"
//	    "github.com/gogpu/pixgrid/canvas"
//	    "github.com/gogpu/pixgrid/raster"
//	)
//
//	cv := canvas.New()
//	cv.Clear()
//	raster.Line(pixgrid.Pt(10, 12), pixgrid.Pt(26, 22), cv.Plotter(pixgrid.Green))
//	_ = cv.SavePNG("line.png", 1)
//
// # Coordinate System
//
// All algorithms work in model space:
//   - Origin (0,0) at a logical center
//   - X increases right
//   - Y increases up
//   - Angles in degrees, counter-clockwise
//
// Mapping to device pixels (origin offset, Y flip, dot size) is done only by
// the plot callback handed to the rasterizers. The algorithms never see the
// surface they draw on.
//
// # Plot Callbacks
//
// Rasterizers report pixels by calling a [raster.PlotFunc] once per pixel.
// The same coordinate may be reported more than once (circle octant
// boundaries, overlapping triangle edges), so callbacks must tolerate
// repeated writes.
package pixgrid

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
