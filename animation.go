package bubblemap

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Property identifies a node field an Animator can interpolate.
type Property uint8

const (
	PropRadius Property = iota // Node.Radius
	PropFillR                  // Node.Fill.R
	PropFillG                  // Node.Fill.G
	PropFillB                  // Node.Fill.B
	PropFillA                  // Node.Fill.A
	PropAlpha                  // Node.Alpha
)

// field returns a pointer to the node field backing the property.
func (n *Node) field(p Property) *float64 {
	switch p {
	case PropRadius:
		return &n.Radius
	case PropFillR:
		return &n.Fill.R
	case PropFillG:
		return &n.Fill.G
	case PropFillB:
		return &n.Fill.B
	case PropFillA:
		return &n.Fill.A
	case PropAlpha:
		return &n.Alpha
	default:
		panic("bubblemap: unknown animation property")
	}
}

// Animator starts time-based property interpolations on nodes. The overlay
// treats every call as fire-and-forget: it never awaits, cancels, or tracks
// completion. Implementations must apply "latest write wins": starting an
// interpolation for a (node, property) pair replaces any in-flight one.
type Animator interface {
	// Animate interpolates the node's property from `from` to `to` over the
	// given duration in seconds. A non-positive duration applies `to`
	// immediately.
	Animate(n *Node, prop Property, from, to float64, duration float32)
}

// tweenKey identifies one in-flight interpolation.
type tweenKey struct {
	node *Node
	prop Property
}

// TweenAnimator is the default Animator, backed by gween. There is no global
// scheduler: the caller pumps Update(dt) each frame, typically from the
// ebiten game loop. Interpolations on disposed nodes are dropped on the next
// Update.
type TweenAnimator struct {
	active map[tweenKey]*gween.Tween

	// Ease is the easing function applied to every interpolation.
	// Defaults to ease.Linear.
	Ease ease.TweenFunc
}

// NewTweenAnimator creates a TweenAnimator with linear easing.
func NewTweenAnimator() *TweenAnimator {
	return &TweenAnimator{
		active: make(map[tweenKey]*gween.Tween),
		Ease:   ease.Linear,
	}
}

// Animate starts (or restarts) the interpolation for the node's property.
// Any in-flight interpolation on the same (node, property) pair is replaced.
func (a *TweenAnimator) Animate(n *Node, prop Property, from, to float64, duration float32) {
	key := tweenKey{node: n, prop: prop}
	if duration <= 0 {
		*n.field(prop) = to
		delete(a.active, key)
		return
	}
	a.active[key] = gween.New(float32(from), float32(to), duration, a.Ease)
}

// Update advances all in-flight interpolations by dt seconds and writes the
// interpolated values into their node fields. Finished interpolations and
// interpolations whose node has been disposed are removed.
func (a *TweenAnimator) Update(dt float32) {
	for key, tw := range a.active {
		if key.node.IsDisposed() {
			delete(a.active, key)
			continue
		}
		val, finished := tw.Update(dt)
		*key.node.field(key.prop) = float64(val)
		if finished {
			delete(a.active, key)
		}
	}
}

// Active returns the number of in-flight interpolations.
func (a *TweenAnimator) Active() int {
	return len(a.active)
}
