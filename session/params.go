package session

import "github.com/gogpu/pixgrid"

// Params are the shape parameters the demo commands draw with.
type Params struct {
	LineFrom, LineTo pixgrid.Point

	CircleCenter pixgrid.Point
	CircleRadius int

	// Triangle vertices in drawing order A, B, C.
	Triangle [3]pixgrid.Point

	// Transforms are applied to each triangle vertex, step by step.
	Transforms pixgrid.Chain
}

// DefaultParams returns the classic demo values: a shallow line, a circle
// straddling the origin and a small triangle that is translated, rotated a
// quarter turn and mirrored.
func DefaultParams() Params {
	return Params{
		LineFrom:     pixgrid.Pt(10, 12),
		LineTo:       pixgrid.Pt(26, 22),
		CircleCenter: pixgrid.Pt(-3, -3),
		CircleRadius: 8,
		Triangle:     [3]pixgrid.Point{pixgrid.Pt(0, 0), pixgrid.Pt(1, 1), pixgrid.Pt(5, 2)},
		Transforms: pixgrid.Chain{
			pixgrid.Translation(5, 1),
			pixgrid.Rotation(90),
			pixgrid.ReflectionY(),
		},
	}
}

// clone returns p with its own copy of the transform chain.
func (p Params) clone() Params {
	p.Transforms = append(pixgrid.Chain(nil), p.Transforms...)
	return p
}
