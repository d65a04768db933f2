package bubblemap

import "strings"

// nodeIDCounter is a plain counter (no atomic — bubblemap is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental surface element. A single flat struct is used for
// all node kinds to avoid interface dispatch during the draw traversal.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Kind NodeKind

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local translation)
	X, Y float64

	// Computed during traversal.
	worldX, worldY float64
	worldAlpha     float64

	// Visibility
	Alpha   float64
	Visible bool

	// Bubble fields (KindBubble)
	Radius float64
	Fill   Color

	// Text fields (KindLabel, KindTitle)
	Text string

	// Capture fields (KindCapture)
	Width, Height float64

	// Datum is the dataset record bound to this node for the current cycle.
	// Ownership stays with the caller; the overlay only holds a reference.
	Datum any

	// Per-node callbacks (nil by default; zero cost when unused)
	OnClick  func(datum any)
	OnUpdate func(dt float64)

	// Internal
	diagnostic bool // tagged for removal when diagnostics are disabled
	disposed   bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.worldAlpha = 1
	n.Fill = ColorWhite
	n.Visible = true
}

// NewGroup creates a grouping node with no visual representation.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Kind: KindGroup}
	nodeDefaults(n)
	return n
}

// NewBubble creates a bubble node with radius 0. The overlay animates the
// radius up from zero after creation.
func NewBubble(name string) *Node {
	n := &Node{Name: name, Kind: KindBubble}
	nodeDefaults(n)
	return n
}

// NewLabel creates a label node with the given text.
func NewLabel(name, text string) *Node {
	n := &Node{Name: name, Kind: KindLabel, Text: text}
	nodeDefaults(n)
	return n
}

// NewTitle creates a title (tooltip) node with the given text.
func NewTitle(name, text string) *Node {
	n := &Node{Name: name, Kind: KindTitle, Text: text}
	nodeDefaults(n)
	return n
}

// NewCapture creates a transparent pointer-capture region of the given size.
func NewCapture(name string, width, height float64) *Node {
	n := &Node{Name: name, Kind: KindCapture, Width: width, Height: height}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("bubblemap: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("bubblemap: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("bubblemap: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// ChildOfKind returns the first direct child of the given kind, or
// (nil, false) if there is none.
func (n *Node) ChildOfKind(kind NodeKind) (*Node, bool) {
	for _, child := range n.children {
		if child.Kind == kind {
			return child, true
		}
	}
	return nil, false
}

// RemoveChildrenOfKind detaches every direct child of the given kind and
// returns how many were removed.
func (n *Node) RemoveChildrenOfKind(kind NodeKind) int {
	removed := 0
	kept := n.children[:0]
	for _, child := range n.children {
		if child.Kind == kind {
			child.Parent = nil
			removed++
			continue
		}
		kept = append(kept, child)
	}
	// Nil out the tail so the backing array drops its references.
	for i := len(kept); i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.children = kept
	return removed
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Datum = nil
	n.OnClick = nil
	n.OnUpdate = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// NameToken derives the stable identity token used to index a point's node:
// lowercase, spaces collapsed to underscores, and any character outside
// [a-z0-9_-] dropped. Distinct names may collapse to the same token; the
// first registration wins the node, as with duplicate names.
func NameToken(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch {
		case r == ' ' || r == '\t':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
