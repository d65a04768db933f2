package bubblemap

// RadiusOverrides holds the optional caller overrides for the bubble radius
// range. Min and Max are stored independently; a value only participates in
// range derivation when its Set flag is true.
type RadiusOverrides struct {
	Min    float64
	MinSet bool
	Max    float64
	MaxSet bool
}

// RadiusRange derives the [min, max] bubble radius range in pixels.
//
// Precedence, first match wins:
//  1. only Min set, and non-negative: [Min, width*maxRelativeSize]
//  2. only Max set, and non-negative: [builtinMin, Max]
//  3. both set, both non-negative, Max >= Min: [Min, Max]
//  4. anything else (neither set, a negative value, Max < Min):
//     [builtinMin, width*maxRelativeSize]
//
// Case 4 is a silent fallback, not an error.
func RadiusRange(ov RadiusOverrides, width, maxRelativeSize, builtinMin float64) Range {
	hi := width * maxRelativeSize
	switch {
	case ov.MinSet && ov.Min >= 0 && !ov.MaxSet:
		return Range{Min: ov.Min, Max: hi}
	case ov.MaxSet && ov.Max >= 0 && !ov.MinSet:
		return Range{Min: builtinMin, Max: ov.Max}
	case ov.MinSet && ov.MaxSet && ov.Min >= 0 && ov.Max >= 0 && ov.Max >= ov.Min:
		return Range{Min: ov.Min, Max: ov.Max}
	default:
		return Range{Min: builtinMin, Max: hi}
	}
}

// --- Override accessors ---

// SetMinBubbleR sets the minimum bubble radius override. Negative values are
// stored but ignored by RadiusRange (silent fallback). Returns the overlay
// for chaining.
func (o *Overlay) SetMinBubbleR(r float64) *Overlay {
	o.overrides.Min = r
	o.overrides.MinSet = true
	return o
}

// MinBubbleR returns the minimum bubble radius override and whether one was
// set.
func (o *Overlay) MinBubbleR() (float64, bool) {
	return o.overrides.Min, o.overrides.MinSet
}

// SetMaxBubbleR sets the maximum bubble radius override. Negative values are
// stored but ignored by RadiusRange (silent fallback). Returns the overlay
// for chaining.
func (o *Overlay) SetMaxBubbleR(r float64) *Overlay {
	o.overrides.Max = r
	o.overrides.MaxSet = true
	return o
}

// MaxBubbleR returns the maximum bubble radius override and whether one was
// set. It reads only the max override, never the min.
func (o *Overlay) MaxBubbleR() (float64, bool) {
	return o.overrides.Max, o.overrides.MaxSet
}
