// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"image"
	"strings"
	"unicode"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/pixgrid"
)

// Panel text layout in device pixels.
const (
	panelPadding    = 16
	panelLineHeight = 16
)

// DrawPanel repaints the panel with a title followed by lines of text.
// Lines that do not fit vertically are dropped; long lines are cut at the
// panel edge by the font drawer. It returns the number of lines drawn, title
// excluded.
func (c *Canvas) DrawPanel(title string, lines []string) int {
	r := c.PanelRect()
	if r.Empty() {
		return 0
	}

	draw.Draw(c.img, r, image.NewUniform(pixgrid.PanelBackground.NRGBA()), image.Point{}, draw.Src)

	border := c.devicePlotter(pixgrid.Gray)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		border(r.Min.X, y)
	}

	face := basicfont.Face7x13
	baseline := r.Min.Y + panelPadding + face.Ascent
	c.drawLabel(title, r.Min.X+panelPadding, baseline, pixgrid.White)
	baseline += 2 * panelLineHeight

	drawn := 0
	for _, line := range lines {
		if baseline+face.Descent > r.Max.Y {
			break
		}
		c.drawLabel(line, r.Min.X+panelPadding, baseline, pixgrid.Gray)
		baseline += panelLineHeight
		drawn++
	}
	return drawn
}

// drawLabel renders s with its baseline at device y, starting at device x.
func (c *Canvas) drawLabel(s string, x, y int, col pixgrid.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.NRGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(NormalizeLabel(s))
}

// NormalizeLabel folds s to printable ASCII, the range covered by the panel
// font. Accents are stripped from letters that have a canonical
// decomposition, tabs become spaces and anything else outside ASCII becomes
// '?'.
func NormalizeLabel(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), runes.Map(toPrintableASCII))
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.Map(toPrintableASCII, s)
	}
	return out
}

func toPrintableASCII(r rune) rune {
	switch {
	case r == '\t':
		return ' '
	case r >= 0x20 && r < 0x7f:
		return r
	}
	return '?'
}
