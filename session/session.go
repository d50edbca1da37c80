// Package session dispatches drawing commands onto a canvas.
//
// A Session replaces process-wide window state with an explicit object: it
// owns a canvas, the current shape parameters and a short text history shown
// on the canvas panel. Commands are either single keys, as typed in an
// interactive window, or named commands with arguments:
//
//	1                      draw the line
//	2                      draw the circle
//	3                      draw the triangle and its transformed copy
//	c                      clear the drawing area
//	q                      quit
//	line 0 0 40 -15        set the line endpoints and draw it
//	circle 5 5 20          set the circle and draw it
//	triangle 0 0 4 0 0 4   set the triangle vertices
//	translate 5 1          append a translation step
//	rotate 90              append a rotation step
//	reflect                append a Y axis reflection step
//	reset                  drop all transform steps
//	help                   list the commands on the panel
//
// A Session is not safe for concurrent use.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gogpu/pixgrid"
	"github.com/gogpu/pixgrid/canvas"
)

// DefaultHistoryLimit is the number of history lines kept for the panel.
const DefaultHistoryLimit = 40

const panelTitle = "Interactive Computer Graphics Algorithms"

// Option configures a Session during creation.
type Option func(*Session)

// WithParams replaces the default shape parameters.
func WithParams(p Params) Option {
	return func(s *Session) {
		s.params = p.clone()
	}
}

// WithHistoryLimit sets how many history lines are kept. Values below 1 keep
// the default.
func WithHistoryLimit(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.historyLimit = n
		}
	}
}

// WithLogger sets the logger for executed commands. The default is
// pixgrid.Logger() at creation time.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session executes commands against a canvas.
type Session struct {
	canvas       *canvas.Canvas
	params       Params
	history      []string
	historyLimit int
	log          *slog.Logger
}

// New creates a session drawing on cv. The canvas is cleared and the panel
// drawn with the command list.
func New(cv *canvas.Canvas, opts ...Option) *Session {
	s := &Session{
		canvas:       cv,
		params:       DefaultParams(),
		historyLimit: DefaultHistoryLimit,
		log:          pixgrid.Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.canvas.Clear()
	s.redrawPanel()
	return s
}

// Canvas returns the canvas the session draws on.
func (s *Session) Canvas() *canvas.Canvas {
	return s.canvas
}

// Params returns a copy of the current shape parameters.
func (s *Session) Params() Params {
	return s.params.clone()
}

// History returns a copy of the panel history, oldest first.
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}

// Help returns the command list for the current parameters.
func (s *Session) Help() []string {
	p := s.params
	return []string{
		"Commands:",
		fmt.Sprintf("  1 - Draw Bresenham's Line %v to %v", p.LineFrom, p.LineTo),
		fmt.Sprintf("  2 - Draw Midpoint Circle center %v radius %d", p.CircleCenter, p.CircleRadius),
		"  3 - Apply 2D Transformations to Triangle",
		"  C - Clear Canvas",
		"  Q - Quit",
	}
}

// Execute runs one command line. It reports quit == true for the quit
// command. Blank input is a no-op.
func (s *Session) Execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]

	cmd, ok := commands[name]
	if !ok {
		s.log.Warn("session: unknown command", "command", fields[0])
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	if err := cmd.checkArgs(name, args); err != nil {
		s.log.Warn("session: rejected command", "command", name, "err", err)
		return false, err
	}
	if err := cmd.run(s, args); err != nil {
		s.log.Warn("session: rejected command", "command", name, "err", err)
		return false, err
	}
	if cmd.quit {
		return true, nil
	}
	s.redrawPanel()
	return false, nil
}

// RunKeys executes each non-space rune of keys as a single-key command and
// stops at quit or at the first error.
func (s *Session) RunKeys(keys string) error {
	for _, r := range keys {
		if r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		quit, err := s.Execute(string(r))
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return nil
}

// Run executes commands read from r, one per line. Blank lines and lines
// starting with '#' are skipped. It stops at quit, at end of input, at the
// first failing command or when ctx is done.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quit, err := s.Execute(line)
		if err != nil {
			return fmt.Errorf("session: line %d: %w", n, err)
		}
		if quit {
			return nil
		}
	}
	return sc.Err()
}

// record appends a history line, dropping the oldest past the limit.
func (s *Session) record(format string, args ...any) {
	s.history = append(s.history, fmt.Sprintf(format, args...))
	if over := len(s.history) - s.historyLimit; over > 0 {
		s.history = append(s.history[:0], s.history[over:]...)
	}
}

func (s *Session) redrawPanel() {
	lines := append(s.Help(), "")
	lines = append(lines, s.history...)
	s.canvas.DrawPanel(panelTitle, lines)
}
