package bubblemap

// ChartHost is the base chart object the overlay decorates. It supplies the
// current filtered dataset, the accessors that turn a datum into a key,
// color, and radius, the layout width, and the selection behaviors. The
// overlay drives the host's radius scale by handing it the pixel range
// derived on each full render.
//
// None of the accessor methods are guarded by the overlay: a point whose
// name matches no dataset key binds a nil datum, and if the host's accessors
// do not tolerate nil the resulting panic propagates to the caller.
type ChartHost interface {
	// Data returns the current filtered dataset. Called once per render or
	// redraw; the overlay does not retain the slice.
	Data() []any

	// KeyOf extracts the grouping key that matches a point name.
	KeyOf(datum any) string

	// ColorOf returns the bubble fill for a datum.
	ColorOf(datum any) Color

	// Width returns the chart layout width in pixels.
	Width() float64

	// BubbleR converts a datum into a pixel radius using the host's radius
	// scale, whose range the overlay sets via ApplyRadiusRange.
	BubbleR(datum any) float64

	// ApplyRadiusRange hands the host the [min, max] pixel range derived for
	// the current full render.
	ApplyRadiusRange(r Range)

	// FadeDeselected applies the host's deselection fade to the overlay
	// container. Invoked as the final step of every render and redraw.
	FadeDeselected(container *Node)

	// ToggleSelect toggles filtering on the clicked bubble's datum.
	ToggleSelect(datum any)
}

// buildDataMap builds the transient key → datum mapping for one cycle.
// Rebuilt on every render and redraw and discarded afterwards; later data
// wins when two records share a key.
func buildDataMap(host ChartHost) map[string]any {
	data := host.Data()
	m := make(map[string]any, len(data))
	for _, d := range data {
		m[host.KeyOf(d)] = d
	}
	return m
}
