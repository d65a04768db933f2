package bubblemap

// resolveNode returns the persistent node for a point, creating it on first
// use. The node is indexed by the token derived from the point name, so a
// later point with the same (or a token-colliding) name reuses the existing
// node and does NOT move it. If the data map holds the point's key, the
// datum is rebound; otherwise the node keeps whatever datum it last bound.
func (o *Overlay) resolveNode(p Point, data map[string]any) *Node {
	token := NameToken(p.Name)
	node, ok := o.nodes[token]
	if ok {
		if globalDebug {
			debugWarnTokenCollision(node.Name, p.Name)
		}
	} else {
		node = NewGroup(p.Name)
		node.SetPosition(p.X, p.Y)
		o.container.AddChild(node)
		o.nodes[token] = node
	}
	if d, ok := data[p.Name]; ok {
		node.Datum = d
	}
	return node
}

// newBubbleFor creates the bubble sub-element for a node: radius 0, fill
// from the host's color function, and a click handler delegating to the
// host's selection toggle.
func (o *Overlay) newBubbleFor(node *Node) *Node {
	b := NewBubble(node.Name)
	b.Radius = 0
	b.Fill = o.host.ColorOf(node.Datum)
	b.OnClick = func(datum any) {
		o.host.ToggleSelect(datum)
	}
	node.AddChild(b)
	return b
}

// initializeBubble runs the full-render path for one node: create the bubble
// if it is missing, animate its radius to the host-computed value, and
// delegate label and title creation to the decorator.
func (o *Overlay) initializeBubble(node *Node) {
	b, ok := node.ChildOfKind(KindBubble)
	if !ok {
		b = o.newBubbleFor(node)
	}
	o.anim.Animate(b, PropRadius, b.Radius, o.host.BubbleR(node.Datum), o.TransitionDuration)
	o.decorator.CreateLabel(node, node.Datum)
	o.decorator.CreateTitle(node, node.Datum)
}

// updateBubble runs the redraw path for one node: animate the bubble's
// radius and fill to the current computed values and delegate label and
// title updates to the decorator. A node without a bubble (its point was
// registered after the last full render) gets one created here.
func (o *Overlay) updateBubble(node *Node) {
	b, ok := node.ChildOfKind(KindBubble)
	if !ok {
		b = o.newBubbleFor(node)
	}
	o.anim.Animate(b, PropRadius, b.Radius, o.host.BubbleR(node.Datum), o.TransitionDuration)
	o.animateFill(b, o.host.ColorOf(node.Datum))
	o.decorator.UpdateLabel(node, node.Datum)
	o.decorator.UpdateTitle(node, node.Datum)
}

// animateFill issues one interpolation per fill component, from the bubble's
// current fill toward the target color.
func (o *Overlay) animateFill(b *Node, to Color) {
	o.anim.Animate(b, PropFillR, b.Fill.R, to.R, o.TransitionDuration)
	o.anim.Animate(b, PropFillG, b.Fill.G, to.G, o.TransitionDuration)
	o.anim.Animate(b, PropFillB, b.Fill.B, to.B, o.TransitionDuration)
	o.anim.Animate(b, PropFillA, b.Fill.A, to.A, o.TransitionDuration)
}
