package pixgrid

import "strconv"

// Transform maps one grid point to another.
type Transform struct {
	name  string
	apply func(Point) Point
}

// Translation returns a Transform that moves points by (dx, dy).
func Translation(dx, dy int) Transform {
	return Transform{
		name:  "translate(" + strconv.Itoa(dx) + "," + strconv.Itoa(dy) + ")",
		apply: func(p Point) Point { return Translate(p, dx, dy) },
	}
}

// Rotation returns a Transform that rotates points about the origin.
func Rotation(degrees float64) Transform {
	return Transform{
		name:  "rotate(" + strconv.FormatFloat(degrees, 'g', -1, 64) + ")",
		apply: func(p Point) Point { return Rotate(p, degrees) },
	}
}

// ReflectionY returns a Transform that mirrors points across the Y axis.
func ReflectionY() Transform {
	return Transform{name: "reflectY", apply: ReflectY}
}

// Apply returns t applied to p. The zero Transform is the identity.
func (t Transform) Apply(p Point) Point {
	if t.apply == nil {
		return p
	}
	return t.apply(p)
}

// String returns a short description such as "rotate(90)".
func (t Transform) String() string {
	if t.name == "" {
		return "identity"
	}
	return t.name
}

// Chain is an ordered sequence of transforms.
//
// Steps are applied one after another and every step rounds to the grid, so a
// Chain is deliberately not collapsed into a single matrix: rounding after
// each step gives different pixels than rounding once at the end.
type Chain []Transform

// Apply runs every step of c on p, in order.
func (c Chain) Apply(p Point) Point {
	for _, t := range c {
		p = t.Apply(p)
	}
	return p
}

// ApplyAll returns a new slice with c applied to each point.
// The input slice is not modified.
func (c Chain) ApplyAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = c.Apply(p)
	}
	return out
}

// Steps returns the point after each step of c, starting with p itself.
// The result has len(c)+1 entries.
func (c Chain) Steps(p Point) []Point {
	out := make([]Point, 0, len(c)+1)
	out = append(out, p)
	for _, t := range c {
		p = t.Apply(p)
		out = append(out, p)
	}
	return out
}
