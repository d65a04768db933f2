// Package bubblemap overlays data-driven bubble markers at fixed named
// anchor coordinates on a drawing surface, for [Ebitengine].
//
// A bubble's radius encodes a per-category scalar value and its fill encodes
// the category, which makes the package suited to plotting aggregates on top
// of a background image — incident counts on a map, readings on a floor
// plan, and so on. The caller owns the positional layout: anchors are
// registered by name and never move.
//
// # Quick start
//
//	surface := bubblemap.NewSurface(800, 600)
//	surface.SetBackground(mapImage)
//
//	overlay := bubblemap.New(host) // host supplies data, colors, radii
//	overlay.SetSurface(surface)
//	overlay.AddPoint("toronto", 364, 400).
//		AddPoint("ottawa", 395.5, 383)
//
//	if err := overlay.Render(); err != nil { ... }
//
// Then, inside an [ebiten.Game]:
//
//	func (g *Game) Update() error {
//		dt := 1.0 / float64(ebiten.TPS())
//		g.surface.Update(dt)
//		g.animator.Update(float32(dt))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) { g.surface.Draw(screen) }
//
// # Render lifecycle
//
// [Overlay.Render] is the heavy pass: it creates the container on first use,
// derives the bubble radius range, creates any missing per-point nodes and
// bubbles, and starts their radius animations. [Overlay.Redraw] is the light
// pass: it rebinds the current dataset and retargets radius and fill on the
// existing bubbles. The caller chooses which to invoke; the overlay never
// switches modes on its own.
//
// Per-point nodes are created once and reused for the lifetime of the
// overlay. [Overlay.Reset] strips their bubble, label, and title
// sub-elements and clears the point registry, leaving empty node shells to
// be reused by a later registration of the same name.
//
// # Animation
//
// Radius and fill changes are handed to an [Animator] as fire-and-forget
// interpolations (via [gween] in the default [TweenAnimator]). Starting a
// new interpolation on a property replaces any in-flight one, so the latest
// write always wins. The overlay never awaits completion.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package bubblemap
