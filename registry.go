package bubblemap

import "math"

// Point is a named anchor coordinate in the drawing surface's local space.
// The name must match a dataset key for the point's bubble to bind a datum.
//
// Point names are not deduplicated. When two points share a name, the first
// occurrence creates the node and every later occurrence rebinds the datum
// to that same node without moving it.
type Point struct {
	Name string
	X, Y float64
}

// validate reports why the point cannot be registered in a batch, or "".
// NaN coordinates stand in for an absent field.
func (p Point) validate() string {
	switch {
	case p.Name == "":
		return "missing name"
	case math.IsNaN(p.X):
		return "missing x"
	case math.IsNaN(p.Y):
		return "missing y"
	}
	return ""
}

// AddPoint registers a single anchor point. No validation and no
// deduplication are performed. Returns the overlay for chaining.
func (o *Overlay) AddPoint(name string, x, y float64) *Overlay {
	o.points = append(o.points, Point{Name: name, X: x, Y: y})
	return o
}

// AddPoints registers a batch of anchor points. An empty batch is rejected
// with a *ValidationError, as is any entry with an empty name or a NaN
// coordinate.
//
// Validation is sequential and non-atomic: each entry is registered before
// the next is examined, so entries preceding a rejected one remain
// registered. There is no rollback.
func (o *Overlay) AddPoints(points []Point) error {
	if len(points) == 0 {
		return &ValidationError{Index: -1, Reason: "empty batch"}
	}
	for i, p := range points {
		if reason := p.validate(); reason != "" {
			return &ValidationError{Index: i, Reason: reason}
		}
		o.points = append(o.points, p)
	}
	return nil
}

// Points returns the registered points in registration order. The returned
// slice MUST NOT be mutated by the caller.
func (o *Overlay) Points() []Point {
	return o.points
}

// Reset strips every point's bubble, label, and title sub-elements and then
// clears the point registry. The per-point node shells stay in the container
// with their original translation, so a later registration of the same name
// reuses the shell in place. The container itself is retained.
//
// Points with no node yet (registered after the last render) get their shell
// created here solely so its sub-elements can be stripped, matching the
// resolve-then-remove sequence of the render paths.
func (o *Overlay) Reset() {
	if o.container == nil {
		// Nothing was ever rendered; there are no visuals to strip.
		o.points = o.points[:0]
		return
	}
	for _, p := range o.points {
		node := o.resolveNode(p, nil)
		node.RemoveChildrenOfKind(KindBubble)
		node.RemoveChildrenOfKind(KindLabel)
		node.RemoveChildrenOfKind(KindTitle)
	}
	o.points = o.points[:0]
}
