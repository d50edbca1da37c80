package session

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/pixgrid"
	"github.com/gogpu/pixgrid/raster"
	"github.com/gogpu/pixgrid/shape"
)

// command is one entry of the dispatch table.
type command struct {
	arity []int  // accepted argument counts
	usage string // argument synopsis for error messages
	quit  bool
	run   func(s *Session, args []string) error
}

func (c command) checkArgs(name string, args []string) error {
	if slices.Contains(c.arity, len(args)) {
		return nil
	}
	if c.usage == "" {
		return fmt.Errorf("%w: %s takes no arguments", ErrBadArgs, name)
	}
	return fmt.Errorf("%w: usage: %s %s", ErrBadArgs, name, c.usage)
}

var (
	lineCmd      = command{arity: []int{0, 4}, usage: "[x0 y0 x1 y1]", run: (*Session).line}
	circleCmd    = command{arity: []int{0, 3}, usage: "[cx cy r]", run: (*Session).circle}
	transformCmd = command{arity: []int{0}, run: (*Session).transform}
	clearCmd     = command{arity: []int{0}, run: (*Session).clear}
	quitCmd      = command{arity: []int{0}, quit: true, run: func(*Session, []string) error { return nil }}
)

// commands maps lower-case keys and names to their handlers.
var commands = map[string]command{
	"1":         lineCmd,
	"line":      lineCmd,
	"2":         circleCmd,
	"circle":    circleCmd,
	"3":         transformCmd,
	"transform": transformCmd,
	"c":         clearCmd,
	"clear":     clearCmd,
	"q":         quitCmd,
	"quit":      quitCmd,
	"triangle":  {arity: []int{6}, usage: "ax ay bx by cx cy", run: (*Session).setTriangle},
	"translate": {arity: []int{2}, usage: "dx dy", run: (*Session).addTranslate},
	"rotate":    {arity: []int{1}, usage: "degrees", run: (*Session).addRotate},
	"reflect":   {arity: []int{0}, run: (*Session).addReflect},
	"reset":     {arity: []int{0}, run: (*Session).resetTransforms},
	"help":      {arity: []int{0}, run: (*Session).help},
}

func (s *Session) line(args []string) error {
	if len(args) == 4 {
		v, err := parseInts(args)
		if err != nil {
			return err
		}
		s.params.LineFrom = pixgrid.Pt(v[0], v[1])
		s.params.LineTo = pixgrid.Pt(v[2], v[3])
	}

	p := s.params
	plot, n := raster.Counting(s.canvas.Plotter(pixgrid.Green))
	raster.Line(p.LineFrom, p.LineTo, plot)

	s.record("Drawing Bresenham's Line from %v to %v", p.LineFrom, p.LineTo)
	s.log.Info("session: line", "from", p.LineFrom.String(), "to", p.LineTo.String(), "pixels", *n)
	return nil
}

func (s *Session) circle(args []string) error {
	p := s.params
	if len(args) == 3 {
		v, err := parseInts(args)
		if err != nil {
			return err
		}
		p.CircleCenter = pixgrid.Pt(v[0], v[1])
		p.CircleRadius = v[2]
	}
	if err := raster.CheckRadius(p.CircleRadius); err != nil {
		return fmt.Errorf("circle %v r=%d: %w", p.CircleCenter, p.CircleRadius, err)
	}
	s.params = p

	plot, n := raster.Counting(s.canvas.Plotter(pixgrid.Yellow))
	raster.Circle(p.CircleCenter, p.CircleRadius, plot)

	s.record("Drawing Midpoint Circle: center %v, radius %d", p.CircleCenter, p.CircleRadius)
	s.log.Info("session: circle", "center", p.CircleCenter.String(), "radius", p.CircleRadius, "plots", *n)
	return nil
}

func (s *Session) transform([]string) error {
	v := s.params.Triangle

	s.record("Applying 2D Transformations:")
	s.record("  Initial triangle: %s", formatTriangle(v))
	shape.Triangle(v[0], v[1], v[2], s.canvas.Plotter(pixgrid.Blue))
	initial := v

	for _, step := range s.params.Transforms {
		for i := range v {
			v[i] = step.Apply(v[i])
		}
		s.record("  After %v: %s", step, formatTriangle(v))
	}
	shape.Triangle(v[0], v[1], v[2], s.canvas.Plotter(pixgrid.Red))

	s.log.Info("session: transform",
		"initial", formatTriangle(initial),
		"final", formatTriangle(v),
		"steps", len(s.params.Transforms))
	return nil
}

func (s *Session) clear([]string) error {
	s.canvas.Clear()
	s.record("Clearing canvas...")
	s.log.Info("session: clear")
	return nil
}

func (s *Session) setTriangle(args []string) error {
	v, err := parseInts(args)
	if err != nil {
		return err
	}
	s.params.Triangle = [3]pixgrid.Point{
		pixgrid.Pt(v[0], v[1]),
		pixgrid.Pt(v[2], v[3]),
		pixgrid.Pt(v[4], v[5]),
	}
	s.record("Triangle set to %s", formatTriangle(s.params.Triangle))
	s.log.Info("session: triangle", "vertices", formatTriangle(s.params.Triangle))
	return nil
}

func (s *Session) addTranslate(args []string) error {
	v, err := parseInts(args)
	if err != nil {
		return err
	}
	return s.addStep(pixgrid.Translation(v[0], v[1]))
}

func (s *Session) addRotate(args []string) error {
	deg, err := strconv.ParseFloat(args[0], 64)
	if err != nil || math.IsNaN(deg) || math.IsInf(deg, 0) {
		return fmt.Errorf("%w: %q is not a number", ErrBadArgs, args[0])
	}
	return s.addStep(pixgrid.Rotation(deg))
}

func (s *Session) addReflect([]string) error {
	return s.addStep(pixgrid.ReflectionY())
}

func (s *Session) addStep(t pixgrid.Transform) error {
	s.params.Transforms = append(s.params.Transforms, t)
	s.record("Added transform %v (%d steps)", t, len(s.params.Transforms))
	s.log.Info("session: transform step added", "step", t.String(), "steps", len(s.params.Transforms))
	return nil
}

func (s *Session) resetTransforms([]string) error {
	s.params.Transforms = nil
	s.record("Transforms cleared")
	s.log.Info("session: transforms cleared")
	return nil
}

func (s *Session) help([]string) error {
	for _, l := range s.Help() {
		s.record("%s", l)
	}
	return nil
}

// maxArg bounds every integer argument. It keeps a single command's plot
// count proportional to the value typed and far from int overflow, while
// leaving room well beyond any canvas.
const maxArg = 1 << 16

func parseInts(args []string) ([]int, error) {
	v := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrBadArgs, a)
		}
		if n < -maxArg || n > maxArg {
			return nil, fmt.Errorf("%w: %d is outside [%d, %d]", ErrBadArgs, n, -maxArg, maxArg)
		}
		v[i] = n
	}
	return v, nil
}

func formatTriangle(v [3]pixgrid.Point) string {
	var b strings.Builder
	for i, p := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte("ABC"[i])
		b.WriteString(p.String())
	}
	return b.String()
}
