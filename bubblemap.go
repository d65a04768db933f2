package bubblemap

import (
	"fmt"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default bubble fill before the chart's color function runs.
var ColorWhite = Color{1, 1, 1, 1}

// rgba converts the color to an 8-bit premultiplied color.RGBA, scaling the
// alpha channel by the extra factor (a node's inherited world alpha).
func (c Color) rgba(alphaScale float64) color.RGBA {
	a := clamp01(c.A * alphaScale)
	return color.RGBA{
		R: uint8(clamp01(c.R) * a * 255),
		G: uint8(clamp01(c.G) * a * 255),
		B: uint8(clamp01(c.B) * a * 255),
		A: uint8(a * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a min/max pair in pixels. The overlay uses it for the bubble
// radius range derived by RadiusRange.
type Range struct {
	Min, Max float64
}

// NodeKind distinguishes drawing behavior for a Node.
type NodeKind uint8

const (
	KindGroup   NodeKind = iota // grouping node with no visual output
	KindBubble                  // filled circle sized and colored from data
	KindLabel                   // short text centered on the bubble
	KindTitle                   // tooltip text shown while hovering the bubble
	KindCapture                 // transparent pointer-capture region (diagnostics)
)

// Default overlay tuning values. Overridable via the corresponding Overlay
// fields before the first render.
const (
	DefaultMaxRelativeSize    = 0.3  // max bubble radius as a fraction of chart width
	DefaultMinRadius          = 10.0 // built-in minimum bubble radius in pixels
	DefaultMinRadiusWithLabel = 10.0 // bubbles smaller than this hide their label
)

// DefaultTransitionDuration is the length, in seconds, of the radius and
// fill interpolations issued to the animator.
const DefaultTransitionDuration float32 = 0.75

// ValidationError reports a rejected batch point registration: an empty
// batch, or an entry missing a required field. Entries preceding the
// offending one have already been registered; there is no rollback.
type ValidationError struct {
	Index  int    // index of the offending entry, or -1 for an empty batch
	Reason string // which requirement the entry failed
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("bubblemap: invalid point batch: %s", e.Reason)
	}
	return fmt.Sprintf("bubblemap: invalid point at index %d: %s", e.Index, e.Reason)
}

// ConfigurationError reports a render attempted before mandatory
// configuration was supplied (no drawing surface attached).
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("bubblemap: not configured: %s", e.Reason)
}
