package pixgrid

import "errors"

// Sentinel errors for the pixgrid packages.
var (
	// ErrNegativeRadius is returned when a circle is requested with r < 0.
	ErrNegativeRadius = errors.New("pixgrid: negative radius")

	// ErrInvalidHex is returned by Hex for malformed colour strings.
	ErrInvalidHex = errors.New("pixgrid: invalid hex color")
)
