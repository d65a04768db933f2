package bubblemap

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug-text glyph metrics, used to roughly center labels.
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// Draw renders the background image and then the node tree in child order,
// so later siblings appear on top. Titles are drawn last, as a tooltip next
// to the cursor, and only while the cursor is inside the owning bubble.
func (s *Surface) Draw(screen *ebiten.Image) {
	if s.background != nil {
		screen.DrawImage(s.background, nil)
	}
	drawNode(screen, s.root)

	cx, cy := ebiten.CursorPosition()
	drawHoverTitles(screen, s.root, float64(cx), float64(cy))
}

func drawNode(screen *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}
	switch n.Kind {
	case KindBubble:
		if n.Radius > 0 && n.worldAlpha > 0 {
			vector.DrawFilledCircle(screen,
				float32(n.worldX), float32(n.worldY), float32(n.Radius),
				n.Fill.rgba(n.worldAlpha), true)
		}
	case KindLabel:
		if n.Text != "" && n.worldAlpha > 0 {
			x := int(n.worldX) - len(n.Text)*debugGlyphWidth/2
			y := int(n.worldY) - debugGlyphHeight/2
			ebitenutil.DebugPrintAt(screen, n.Text, x, y)
		}
	}
	for _, child := range n.children {
		drawNode(screen, child)
	}
}

// drawHoverTitles draws the title text of any bubble currently under the
// cursor. Titles live as siblings of their bubble under the per-point node.
func drawHoverTitles(screen *ebiten.Image, n *Node, cx, cy float64) {
	if !n.Visible {
		return
	}
	if n.Kind == KindTitle && n.Text != "" && n.Parent != nil {
		if b, ok := n.Parent.ChildOfKind(KindBubble); ok && b.Visible && b.worldAlpha > 0 {
			dx := cx - b.worldX
			dy := cy - b.worldY
			if dx*dx+dy*dy <= b.Radius*b.Radius {
				ebitenutil.DebugPrintAt(screen, n.Text, int(cx)+debugGlyphWidth*2, int(cy)-debugGlyphHeight)
			}
		}
	}
	for _, child := range n.children {
		drawHoverTitles(screen, child, cx, cy)
	}
}
