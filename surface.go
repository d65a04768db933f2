package bubblemap

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the vector drawing surface the overlay attaches to. The caller
// creates it — typically wrapping the background map image — and owns it for
// the chart's lifetime; the overlay never creates one itself.
//
// Surface carries the node tree root, runs per-frame updates, draws the tree
// (see draw.go), and offers minimal pointer dispatch so bubble click
// handlers can fire.
type Surface struct {
	root       *Node
	background *ebiten.Image
	width      float64
	height     float64
}

// NewSurface creates a surface of the given size with a pre-created root
// group node.
func NewSurface(width, height float64) *Surface {
	return &Surface{
		root:   NewGroup("surface"),
		width:  width,
		height: height,
	}
}

// Root returns the surface's root group node.
func (s *Surface) Root() *Node {
	return s.root
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (width, height float64) {
	return s.width, s.height
}

// Bounds returns the surface rectangle in its own coordinate space.
func (s *Surface) Bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// SetBackground sets the image drawn behind the node tree, usually the map
// the bubbles annotate. A nil image draws no background.
func (s *Surface) SetBackground(img *ebiten.Image) {
	s.background = img
}

// Update refreshes world transforms and runs per-node OnUpdate hooks.
// Call once per frame from the game loop, before Draw.
func (s *Surface) Update(dt float64) {
	updateWorld(s.root, 0, 0, 1)
	runUpdateHooks(s.root, dt)
}

func runUpdateHooks(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, child := range n.children {
		runUpdateHooks(child, dt)
	}
}

// DispatchClick hit-tests the bubble nodes against the given surface
// coordinate, topmost (latest drawn) first, and fires the hit bubble's
// OnClick with the datum bound to its parent node. Reports whether a bubble
// was hit. Invisible subtrees and fully faded bubbles are skipped.
func (s *Surface) DispatchClick(x, y float64) bool {
	b := hitBubble(s.root, x, y)
	if b == nil {
		return false
	}
	if b.OnClick != nil {
		var datum any
		if b.Parent != nil {
			datum = b.Parent.Datum
		}
		b.OnClick(datum)
	}
	return true
}

// hitBubble returns the topmost bubble containing (x, y), or nil. Children
// are scanned in reverse so later siblings (drawn on top) win.
func hitBubble(n *Node, x, y float64) *Node {
	if !n.Visible {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := hitBubble(n.children[i], x, y); hit != nil {
			return hit
		}
	}
	if n.Kind == KindBubble && n.worldAlpha > 0 {
		dx := x - n.worldX
		dy := y - n.worldY
		if dx*dx+dy*dy <= n.Radius*n.Radius {
			return n
		}
	}
	return nil
}
