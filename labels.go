package bubblemap

// Decorator creates and updates the label and title sub-elements attached to
// a per-point node. The overlay invokes it once per point per render
// (Create*) or redraw (Update*) cycle, after the bubble itself has been
// reconciled. The datum passed is the node's current binding and may be nil
// when the point name matched no dataset key.
type Decorator interface {
	CreateLabel(node *Node, datum any)
	UpdateLabel(node *Node, datum any)
	CreateTitle(node *Node, datum any)
	UpdateTitle(node *Node, datum any)
}

// TextDecorator is the default Decorator. The label is short text centered
// on the bubble and the title is tooltip text shown while the pointer hovers
// the bubble (see Surface.Draw).
//
// Label and Title produce the text for a datum. A nil function skips that
// sub-element entirely. Neither function is nil-guarded: if it cannot handle
// a nil datum the panic propagates.
type TextDecorator struct {
	Label func(datum any) string
	Title func(datum any) string

	// MinRadiusWithLabel hides the label while the bubble's radius is below
	// this many pixels.
	MinRadiusWithLabel float64
}

// CreateLabel creates the node's label sub-element if missing and sets its
// text. No-op when the Label function is nil.
func (t *TextDecorator) CreateLabel(node *Node, datum any) {
	if t.Label == nil {
		return
	}
	label, ok := node.ChildOfKind(KindLabel)
	if !ok {
		label = NewLabel(node.Name, "")
		node.AddChild(label)
	}
	label.Text = t.Label(datum)
	t.applyLabelVisibility(node, label)
}

// UpdateLabel refreshes the label text and visibility. A node without a
// label (created while a different decorator was installed, or with a nil
// Label function at render time) gets one created here.
func (t *TextDecorator) UpdateLabel(node *Node, datum any) {
	t.CreateLabel(node, datum)
}

// CreateTitle creates the node's title sub-element if missing and sets its
// text. No-op when the Title function is nil.
func (t *TextDecorator) CreateTitle(node *Node, datum any) {
	if t.Title == nil {
		return
	}
	title, ok := node.ChildOfKind(KindTitle)
	if !ok {
		title = NewTitle(node.Name, "")
		node.AddChild(title)
	}
	title.Text = t.Title(datum)
}

// UpdateTitle refreshes the title text, creating the sub-element if missing.
func (t *TextDecorator) UpdateTitle(node *Node, datum any) {
	t.CreateTitle(node, datum)
}

// applyLabelVisibility hides the label while the bubble is too small to
// carry text. Uses the bubble's current radius, so a label fades in over the
// frames after its bubble crosses the threshold.
func (t *TextDecorator) applyLabelVisibility(node, label *Node) {
	if t.MinRadiusWithLabel <= 0 {
		label.Visible = true
		return
	}
	b, ok := node.ChildOfKind(KindBubble)
	label.Visible = ok && b.Radius >= t.MinRadiusWithLabel
}
