package bubblemap

// Nodes carry translation-only transforms: a child's world position is its
// parent's world position plus its local (X, Y). Alpha multiplies down the
// tree the same way. Both are refreshed by Surface.Update before drawing.

// updateWorld recomputes world position and alpha for n and its subtree.
func updateWorld(n *Node, parentX, parentY, parentAlpha float64) {
	n.worldX = parentX + n.X
	n.worldY = parentY + n.Y
	n.worldAlpha = parentAlpha * n.Alpha
	for _, child := range n.children {
		updateWorld(child, n.worldX, n.worldY, n.worldAlpha)
	}
}

// SetPosition sets the node's local translation.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// WorldPosition returns the node's world coordinates as of the last
// Surface.Update (or the last Render, which also refreshes them).
func (n *Node) WorldPosition() (x, y float64) {
	return n.worldX, n.worldY
}
