// Command pixgrid draws Bresenham lines, midpoint circles and transformed
// triangles on a pixel grid and saves the result as PNG.
//
// Commands come from -keys (single keys, as typed in an interactive window)
// or from -script (one command per line, "-" for stdin):
//
//	pixgrid -keys 123 -output demo.png
//	printf 'circle 0 0 50\nrotate 45\n3\n' | pixgrid -script - -scale 2
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/profile"

	"github.com/gogpu/pixgrid"
	"github.com/gogpu/pixgrid/canvas"
	"github.com/gogpu/pixgrid/session"
)

func main() {
	var (
		keys    = flag.String("keys", "123", "single-key commands to run (1 line, 2 circle, 3 transform, c clear, q quit)")
		script  = flag.String("script", "", "file with one command per line, - for stdin (overrides -keys)")
		output  = flag.String("output", "pixgrid.png", "output file")
		scale   = flag.Int("scale", 1, "integer upscale factor for the saved image")
		verbose = flag.Bool("v", false, "debug logging")
		prof    = flag.String("profile", "", "write a profile to the current directory: cpu or mem")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	pixgrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown -profile %q (want cpu or mem)", *prof)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cv := canvas.New()
	s := session.New(cv)
	printHelp(os.Stdout, s)

	if err := run(ctx, s, *keys, *script); err != nil {
		log.Fatalf("pixgrid: %v", err)
	}

	if err := cv.SavePNG(*output, *scale); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Saved %s (%dx%d, scale %d)\n", *output, cv.Width(), cv.Height(), *scale)
}

func run(ctx context.Context, s *session.Session, keys, script string) error {
	switch script {
	case "":
		return s.RunKeys(keys)
	case "-":
		return s.Run(ctx, os.Stdin)
	}

	f, err := os.Open(script) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return s.Run(ctx, f)
}

func printHelp(w io.Writer, s *session.Session) {
	fmt.Fprintln(w, "\n=== Interactive Computer Graphics Algorithms ===")
	for _, line := range s.Help() {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
}
