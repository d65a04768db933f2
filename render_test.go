package bubblemap

import (
	"errors"
	"fmt"
	"testing"
)

// --- Test fakes ---

// testDatum is the opaque dataset record used throughout the overlay tests.
type testDatum struct {
	key   string
	value float64
}

// testHost is a minimal ChartHost. Bubble radius equals the datum value and
// the fill's red channel tracks value/100, so both are easy to assert on.
// Nil datums are tolerated (radius 0, white fill), mirroring a defensive
// host; hosts that are not defensive propagate their own failures.
type testHost struct {
	data    []any
	width   float64
	applied []Range
	faded   []*Node
	toggled []any
}

func (h *testHost) Data() []any { return h.data }

func (h *testHost) KeyOf(d any) string { return d.(*testDatum).key }

func (h *testHost) ColorOf(d any) Color {
	if d == nil {
		return ColorWhite
	}
	return Color{R: clamp01(d.(*testDatum).value / 100), A: 1}
}

func (h *testHost) Width() float64 {
	if h.width == 0 {
		return 400
	}
	return h.width
}

func (h *testHost) BubbleR(d any) float64 {
	if d == nil {
		return 0
	}
	return d.(*testDatum).value
}

func (h *testHost) ApplyRadiusRange(r Range) { h.applied = append(h.applied, r) }

func (h *testHost) FadeDeselected(container *Node) { h.faded = append(h.faded, container) }

func (h *testHost) ToggleSelect(d any) { h.toggled = append(h.toggled, d) }

type animCall struct {
	node     *Node
	prop     Property
	from, to float64
	duration float32
}

// recordingAnimator records every interpolation request and applies the
// target value immediately, so tests can assert on final state without
// pumping frames.
type recordingAnimator struct {
	calls []animCall
}

func (a *recordingAnimator) Animate(n *Node, prop Property, from, to float64, duration float32) {
	a.calls = append(a.calls, animCall{node: n, prop: prop, from: from, to: to, duration: duration})
	*n.field(prop) = to
}

func (a *recordingAnimator) callsFor(n *Node, prop Property) []animCall {
	var out []animCall
	for _, c := range a.calls {
		if c.node == n && c.prop == prop {
			out = append(out, c)
		}
	}
	return out
}

func newTestOverlay(h *testHost) (*Overlay, *recordingAnimator, *Surface) {
	s := NewSurface(h.Width(), 300)
	rec := &recordingAnimator{}
	o := New(h).SetSurface(s).SetAnimator(rec)
	o.SetDecorator(&TextDecorator{
		Label: func(d any) string {
			if d == nil {
				return ""
			}
			return d.(*testDatum).key
		},
		Title: func(d any) string {
			if d == nil {
				return ""
			}
			td := d.(*testDatum)
			return fmt.Sprintf("%s: %v", td.key, td.value)
		},
	})
	return o, rec, s
}

// countKind counts nodes of the given kind in the subtree.
func countKind(n *Node, kind NodeKind) int {
	count := 0
	if n.Kind == kind {
		count++
	}
	for _, child := range n.Children() {
		count += countKind(child, kind)
	}
	return count
}

// --- Render preconditions ---

func TestRenderWithoutSurface(t *testing.T) {
	o := New(&testHost{})
	err := o.Render()
	if err == nil {
		t.Fatal("Render without a surface should fail")
	}
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Errorf("error should be a *ConfigurationError, got %T", err)
	}
}

func TestRedrawBeforeRenderPanics(t *testing.T) {
	o, _, _ := newTestOverlay(&testHost{})
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for Redraw before Render, got none")
		}
	}()
	o.Redraw()
}

// --- Container and node identity ---

func TestRenderCreatesContainerOnce(t *testing.T) {
	o, _, s := newTestOverlay(&testHost{})
	o.AddPoint("a", 1, 1).AddPoint("b", 2, 2)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	if err := o.Render(); err != nil {
		t.Fatal(err)
	}

	if s.Root().NumChildren() != 1 {
		t.Fatalf("surface root children = %d, want 1 container", s.Root().NumChildren())
	}
	if o.Container().NumChildren() != 2 {
		t.Errorf("container children = %d, want one node per distinct name", o.Container().NumChildren())
	}
	if got := countKind(s.Root(), KindBubble); got != 2 {
		t.Errorf("bubbles = %d, want 2", got)
	}
}

func TestResolveSameNodeAcrossCycles(t *testing.T) {
	o, _, _ := newTestOverlay(&testHost{})
	o.AddPoint("a", 3, 4)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	first := o.Container().ChildAt(0)
	o.Redraw()

	if o.Container().NumChildren() != 1 {
		t.Fatalf("container children = %d, want 1", o.Container().NumChildren())
	}
	if o.Container().ChildAt(0) != first {
		t.Error("redraw should reuse the node created during render")
	}
}

func TestRenderPlacesNodeAtPoint(t *testing.T) {
	o, _, _ := newTestOverlay(&testHost{})
	o.AddPoint("x", 10, 20)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	node := o.Container().ChildAt(0)
	if node.X != 10 || node.Y != 20 {
		t.Errorf("node at (%v, %v), want (10, 20)", node.X, node.Y)
	}
	if wx, wy := node.WorldPosition(); wx != 10 || wy != 20 {
		t.Errorf("world position = (%v, %v), want (10, 20)", wx, wy)
	}

	o.Redraw()
	if node.X != 10 || node.Y != 20 {
		t.Errorf("redraw moved the node to (%v, %v)", node.X, node.Y)
	}
}

// Duplicate names share one node: the first occurrence creates and places
// it, later occurrences rebind the datum without moving it.
func TestDuplicateNameRebindsWithoutMoving(t *testing.T) {
	h := &testHost{data: []any{&testDatum{key: "a", value: 12}}}
	o, _, _ := newTestOverlay(h)
	o.AddPoint("a", 1, 2).AddPoint("a", 50, 60)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	if o.Container().NumChildren() != 1 {
		t.Fatalf("container children = %d, want 1", o.Container().NumChildren())
	}
	node := o.Container().ChildAt(0)
	if node.X != 1 || node.Y != 2 {
		t.Errorf("node at (%v, %v), want first occurrence (1, 2)", node.X, node.Y)
	}
	if node.Datum != h.data[0] {
		t.Error("datum should be bound to the shared node")
	}
	if got := countKind(node, KindBubble); got != 1 {
		t.Errorf("bubbles = %d, want 1", got)
	}
}

// --- Data binding ---

func TestRenderBindsDatumAndAnimatesRadius(t *testing.T) {
	h := &testHost{data: []any{&testDatum{key: "a", value: 42}}}
	o, rec, _ := newTestOverlay(h)
	o.AddPoint("a", 5, 5)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	node := o.Container().ChildAt(0)
	if node.Datum != h.data[0] {
		t.Fatal("datum should be bound")
	}
	b, ok := node.ChildOfKind(KindBubble)
	if !ok {
		t.Fatal("bubble should exist")
	}
	calls := rec.callsFor(b, PropRadius)
	if len(calls) != 1 {
		t.Fatalf("radius animations = %d, want 1", len(calls))
	}
	if calls[0].from != 0 || calls[0].to != 42 {
		t.Errorf("radius animated %v → %v, want 0 → 42", calls[0].from, calls[0].to)
	}
	if calls[0].duration != o.TransitionDuration {
		t.Errorf("duration = %v, want %v", calls[0].duration, o.TransitionDuration)
	}
	if b.Radius != 42 {
		t.Errorf("Radius = %v, want 42", b.Radius)
	}
}

func TestUnmatchedPointBindsNilDatum(t *testing.T) {
	o, _, _ := newTestOverlay(&testHost{})
	o.AddPoint("ghost", 9, 9)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	node := o.Container().ChildAt(0)
	if node.Datum != nil {
		t.Error("datum should be nil for an unmatched point")
	}
	if b, ok := node.ChildOfKind(KindBubble); !ok || b.Radius != 0 {
		t.Error("unmatched bubble should exist with radius 0")
	}
}

// A node whose key disappears from the dataset keeps its previous datum.
func TestStaleDatumKeptWhenKeyAbsent(t *testing.T) {
	d := &testDatum{key: "a", value: 7}
	h := &testHost{data: []any{d}}
	o, rec, _ := newTestOverlay(h)
	o.AddPoint("a", 1, 1)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	h.data = nil
	o.Redraw()

	node := o.Container().ChildAt(0)
	if node.Datum != d {
		t.Error("node should keep its stale datum when the key is absent")
	}
	b, _ := node.ChildOfKind(KindBubble)
	calls := rec.callsFor(b, PropRadius)
	if len(calls) != 2 || calls[1].to != 7 {
		t.Errorf("redraw should retarget radius from the stale datum, calls = %+v", calls)
	}
}

// --- Redraw path ---

// A point registered between a render and the next redraw still gets a
// bubble: the redraw path creates missing sub-elements.
func TestRedrawCreatesMissingBubble(t *testing.T) {
	h := &testHost{data: []any{&testDatum{key: "a", value: 5}}}
	o, _, _ := newTestOverlay(h)
	o.AddPoint("a", 1, 1)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	h.data = append(h.data, &testDatum{key: "b", value: 9})
	o.AddPoint("b", 2, 2)
	o.Redraw()

	if o.Container().NumChildren() != 2 {
		t.Fatalf("container children = %d, want 2", o.Container().NumChildren())
	}
	var late *Node
	for _, n := range o.Container().Children() {
		if n.Name == "b" {
			late = n
		}
	}
	if late == nil {
		t.Fatal("late point's node should exist")
	}
	b, ok := late.ChildOfKind(KindBubble)
	if !ok {
		t.Fatal("late point should get a bubble during redraw")
	}
	if b.Radius != 9 {
		t.Errorf("Radius = %v, want 9", b.Radius)
	}
}

func TestRedrawAnimatesFill(t *testing.T) {
	d := &testDatum{key: "a", value: 50}
	h := &testHost{data: []any{d}}
	o, rec, _ := newTestOverlay(h)
	o.AddPoint("a", 1, 1)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	d.value = 80
	o.Redraw()

	node := o.Container().ChildAt(0)
	b, _ := node.ChildOfKind(KindBubble)
	reds := rec.callsFor(b, PropFillR)
	if len(reds) != 1 {
		t.Fatalf("fill-R animations = %d, want 1 (render sets fill directly)", len(reds))
	}
	if reds[0].from != 0.5 || reds[0].to != 0.8 {
		t.Errorf("fill-R animated %v → %v, want 0.5 → 0.8", reds[0].from, reds[0].to)
	}
}

// --- Radius range and fade pass ---

func TestRadiusRangeAppliedOnRenderOnly(t *testing.T) {
	h := &testHost{}
	o, _, _ := newTestOverlay(h)
	o.MinRadius = 2
	o.AddPoint("a", 1, 1)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	o.Redraw()

	if len(h.applied) != 1 {
		t.Fatalf("ApplyRadiusRange calls = %d, want 1 (render only)", len(h.applied))
	}
	want := Range{Min: 2, Max: 120} // width 400 * relative size 0.3
	if h.applied[0] != want {
		t.Errorf("applied range = %v, want %v", h.applied[0], want)
	}
	if o.CurrentRadiusRange() != want {
		t.Errorf("CurrentRadiusRange = %v, want %v", o.CurrentRadiusRange(), want)
	}
}

func TestRadiusRangeRecomputedEachRender(t *testing.T) {
	h := &testHost{}
	o, _, _ := newTestOverlay(h)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	o.SetMinBubbleR(5)
	if err := o.Render(); err != nil {
		t.Fatal(err)
	}

	if len(h.applied) != 2 {
		t.Fatalf("ApplyRadiusRange calls = %d, want 2", len(h.applied))
	}
	if h.applied[1] != (Range{Min: 5, Max: 120}) {
		t.Errorf("second range = %v, want {5 120}", h.applied[1])
	}
}

func TestFadeAppliedEveryCycle(t *testing.T) {
	h := &testHost{}
	o, _, _ := newTestOverlay(h)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	o.Redraw()
	o.Redraw()

	if len(h.faded) != 3 {
		t.Fatalf("fade passes = %d, want 3", len(h.faded))
	}
	for i, c := range h.faded {
		if c != o.Container() {
			t.Errorf("fade %d applied to %v, want the overlay container", i, c)
		}
	}
}

// --- Reset ---

func TestResetStripsVisualsAndClearsRegistry(t *testing.T) {
	h := &testHost{data: []any{&testDatum{key: "a", value: 30}}}
	o, _, s := newTestOverlay(h)
	o.AddPoint("a", 10, 20).AddPoint("b", 30, 40)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	o.Reset()

	if len(o.Points()) != 0 {
		t.Errorf("points = %d, want 0", len(o.Points()))
	}
	for _, kind := range []NodeKind{KindBubble, KindLabel, KindTitle} {
		if got := countKind(s.Root(), kind); got != 0 {
			t.Errorf("kind %d count = %d, want 0 after reset", kind, got)
		}
	}
	// Shells and the container survive.
	if o.Container() == nil || o.Container().Parent != s.Root() {
		t.Error("container should survive reset")
	}
	if o.Container().NumChildren() != 2 {
		t.Errorf("shells = %d, want 2", o.Container().NumChildren())
	}

	// A render with zero points produces zero bubbles.
	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	if got := countKind(s.Root(), KindBubble); got != 0 {
		t.Errorf("bubbles after empty render = %d, want 0", got)
	}
}

// Re-registering a name after reset reuses the empty shell, so the node
// keeps its original translation even if the new point moved.
func TestResetShellReuseRetainsPosition(t *testing.T) {
	o, _, _ := newTestOverlay(&testHost{})
	o.AddPoint("a", 10, 20)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	o.Reset()
	o.AddPoint("a", 99, 99)
	if err := o.Render(); err != nil {
		t.Fatal(err)
	}

	if o.Container().NumChildren() != 1 {
		t.Fatalf("container children = %d, want 1 reused shell", o.Container().NumChildren())
	}
	node := o.Container().ChildAt(0)
	if node.X != 10 || node.Y != 20 {
		t.Errorf("node at (%v, %v), want original (10, 20)", node.X, node.Y)
	}
	if _, ok := node.ChildOfKind(KindBubble); !ok {
		t.Error("reused shell should get a fresh bubble")
	}
}

// --- Repeat renders ---

func TestRepeatRenderRestartsBubbleAnimation(t *testing.T) {
	h := &testHost{data: []any{&testDatum{key: "a", value: 15}}}
	o, rec, _ := newTestOverlay(h)
	o.AddPoint("a", 1, 1)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	if err := o.Render(); err != nil {
		t.Fatal(err)
	}

	node := o.Container().ChildAt(0)
	b, _ := node.ChildOfKind(KindBubble)
	calls := rec.callsFor(b, PropRadius)
	if len(calls) != 2 {
		t.Fatalf("radius animations = %d, want 2 (one per render)", len(calls))
	}
	// The second pass re-animates toward the already-correct target.
	if calls[1].from != 15 || calls[1].to != 15 {
		t.Errorf("second animation %v → %v, want 15 → 15", calls[1].from, calls[1].to)
	}
}

// --- Click delegation ---

func TestBubbleClickDelegatesToggle(t *testing.T) {
	d := &testDatum{key: "a", value: 25}
	h := &testHost{data: []any{d}}
	o, _, s := newTestOverlay(h)
	o.AddPoint("a", 100, 100)

	if err := o.Render(); err != nil {
		t.Fatal(err)
	}
	if !s.DispatchClick(110, 100) {
		t.Fatal("click inside the bubble should hit")
	}
	if len(h.toggled) != 1 || h.toggled[0] != d {
		t.Errorf("toggled = %+v, want the bound datum", h.toggled)
	}
	if s.DispatchClick(300, 300) {
		t.Error("click far outside should miss")
	}
}
