package bubblemap

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// globalDebug mirrors the most recently set Overlay debug flag so that node
// operations (which lack an Overlay pointer) can check it cheaply. Only
// valid with a single Overlay; multiple Overlays with differing debug modes
// will reflect whichever called SetDebug last.
var globalDebug bool

// SetDebug toggles the development-only diagnostic overlay: a label in the
// surface's top-left corner continuously reporting the pointer's coordinate
// relative to the surface, fed by a full-size transparent capture region.
// Disabling removes every node tagged as diagnostic from the surface tree.
// Idempotent in both directions.
//
// While enabled, node tree operations also run extra invariant checks
// (disposed-node use panics with a descriptive message).
//
// Panics if no surface has been attached.
func (o *Overlay) SetDebug(enabled bool) {
	globalDebug = enabled
	if enabled {
		if o.debugGroup != nil {
			return
		}
		if o.surface == nil {
			panic("bubblemap: SetDebug before a surface is attached")
		}
		o.debugGroup = newDiagnosticGroup(o.surface)
		o.surface.Root().AddChild(o.debugGroup)
		return
	}
	if o.debugGroup == nil {
		return
	}
	removeDiagnostics(o.surface.Root())
	o.debugGroup = nil
}

// newDiagnosticGroup builds the diagnostic subtree: a readout label and a
// surface-sized capture region whose update hook writes the current pointer
// position into the label.
func newDiagnosticGroup(s *Surface) *Node {
	g := NewGroup("debug")
	g.diagnostic = true

	label := NewLabel("debug-position", "")
	label.SetPosition(10, 10)
	label.diagnostic = true

	w, h := s.Size()
	capture := NewCapture("debug-capture", w, h)
	capture.diagnostic = true
	bounds := s.Bounds()
	capture.OnUpdate = func(float64) {
		mx, my := ebiten.CursorPosition()
		if !bounds.Contains(float64(mx), float64(my)) {
			return
		}
		label.Text = fmt.Sprintf("x: %d, y: %d", mx, my)
	}

	g.AddChild(label)
	g.AddChild(capture)
	return g
}

// removeDiagnostics detaches every diagnostic-tagged node in the subtree.
func removeDiagnostics(n *Node) {
	for i := len(n.children) - 1; i >= 0; i-- {
		child := n.children[i]
		if child.diagnostic {
			n.RemoveChild(child)
			continue
		}
		removeDiagnostics(child)
	}
}

// debugCheckDisposed panics with a descriptive message when a disposed node
// is used in a tree operation. Callers skip this entirely unless globalDebug
// is set.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("bubblemap debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugWarnTokenCollision warns on stderr when two distinct point names
// collapse to the same identity token. The first name keeps the node; later
// ones rebind onto it.
func debugWarnTokenCollision(existing, incoming string) {
	if existing == incoming {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[bubblemap] warning: point %q shares identity token %q with point %q\n",
		incoming, NameToken(incoming), existing)
}
