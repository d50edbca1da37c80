// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"fmt"
	"testing"

	"github.com/gogpu/pixgrid"
)

func TestDrawPanel(t *testing.T) {
	cv := New()
	cv.Clear()

	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	if got := cv.DrawPanel("Commands", lines); got != 47 {
		t.Errorf("DrawPanel() drew %d lines, want 47", got)
	}

	if got := cv.At(800, 5); got != pixgrid.Gray {
		t.Errorf("border pixel = %v, want gray", got)
	}
	if got := cv.At(1190, 795); got != pixgrid.PanelBackground {
		t.Errorf("panel background = %v, want %v", got, pixgrid.PanelBackground)
	}
	if got := cv.At(10, 10); got != pixgrid.Background {
		t.Errorf("DrawPanel touched the drawing area: %v", got)
	}

	// The title is drawn in white somewhere in the first text row.
	white := 0
	for y := 16; y < 32; y++ {
		for x := 816; x < 900; x++ {
			if cv.At(x, y) == pixgrid.White {
				white++
			}
		}
	}
	if white == 0 {
		t.Error("no title pixels found in the panel")
	}
}

func TestDrawPanel_NoPanel(t *testing.T) {
	cv := New(WithSize(32, 32), WithDrawingWidth(32))
	if got := cv.DrawPanel("title", []string{"a", "b"}); got != 0 {
		t.Errorf("DrawPanel() on a canvas without panel drew %d lines", got)
	}
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain ASCII (10,12)", "plain ASCII (10,12)"},
		{"naïve café", "naive cafe"},
		{"Ørsted", "?rsted"},
		{"90°", "90?"},
		{"a\tb", "a b"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeLabel(tt.in); got != tt.want {
				t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
