package pixgrid

import (
	"image"
	"math"
	"strconv"
)

// Point is a position on the integer grid in model space (Y up).
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Image converts p to an image.Point without any axis mapping.
func (p Point) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// String returns p formatted as "(x,y)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Translate returns p moved by (dx, dy).
func Translate(p Point, dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rotate returns p rotated counter-clockwise about the origin by degrees.
//
// Each coordinate is rounded to the nearest integer, halfway cases away from
// zero. Repeated rotations therefore accumulate rounding error; rotating by
// 90 and then by -90 returns a point within one unit of p on each axis.
func Rotate(p Point, degrees float64) Point {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	x := float64(p.X)
	y := float64(p.Y)
	return Point{
		X: roundHalfAway(x*cos - y*sin),
		Y: roundHalfAway(x*sin + y*cos),
	}
}

// roundHalfAway rounds v to the nearest integer, halfway cases away from zero.
func roundHalfAway(v float64) int {
	return int(math.Round(v))
}

// ReflectY returns the mirror image of p across the Y axis.
func ReflectY(p Point) Point {
	return Point{X: -p.X, Y: p.Y}
}
