package bubblemap

// Overlay reconciles a fixed registry of named anchor points against a
// dynamic dataset and maintains one persistent bubble node per point under a
// single container on the attached surface.
//
// The lifecycle has two entry points. Render is the heavy pass: it creates
// the container on first use, derives the radius range, and (re)initializes
// every point's bubble. Redraw is the light pass: it retargets radius and
// fill on the existing bubbles without touching container or range. The
// caller chooses which to invoke.
//
// Overlay is not safe for concurrent use; like the rest of the package it
// expects a single logical UI thread.
type Overlay struct {
	host      ChartHost
	surface   *Surface
	container *Node
	nodes     map[string]*Node // token → persistent per-point node
	points    []Point

	overrides   RadiusOverrides
	radiusRange Range // derived per full render, held for its duration

	anim      Animator
	decorator Decorator

	debugGroup *Node

	// Tuning. Change before the first render.
	MaxRelativeSize    float64
	MinRadius          float64
	TransitionDuration float32
}

// New creates an overlay over the given chart host with a gween-backed
// animator and a text decorator. The caller must attach a surface via
// SetSurface before the first Render.
func New(host ChartHost) *Overlay {
	return &Overlay{
		host:               host,
		nodes:              make(map[string]*Node),
		anim:               NewTweenAnimator(),
		decorator:          &TextDecorator{MinRadiusWithLabel: DefaultMinRadiusWithLabel},
		MaxRelativeSize:    DefaultMaxRelativeSize,
		MinRadius:          DefaultMinRadius,
		TransitionDuration: DefaultTransitionDuration,
	}
}

// SetSurface attaches the drawing surface. Mandatory before the first
// Render; the overlay never creates the surface itself. Returns the overlay
// for chaining.
func (o *Overlay) SetSurface(s *Surface) *Overlay {
	o.surface = s
	return o
}

// SetAnimator replaces the animation subsystem. Returns the overlay for
// chaining.
func (o *Overlay) SetAnimator(a Animator) *Overlay {
	o.anim = a
	return o
}

// SetDecorator replaces the label/title rendering collaborator. Returns the
// overlay for chaining.
func (o *Overlay) SetDecorator(d Decorator) *Overlay {
	o.decorator = d
	return o
}

// Animator returns the current animation subsystem.
func (o *Overlay) Animator() Animator {
	return o.anim
}

// Container returns the overlay container node, or nil before the first
// Render. It is created once and reused for the overlay's lifetime; Reset
// strips its grandchildren but never removes it.
func (o *Overlay) Container() *Node {
	return o.container
}

// CurrentRadiusRange returns the radius range derived by the most recent
// Render. Zero before the first render; never updated by Redraw.
func (o *Overlay) CurrentRadiusRange() Range {
	return o.radiusRange
}

// Render runs the full-render pass. It returns a *ConfigurationError if no
// surface has been attached.
//
// Rendering again is safe: the container is never duplicated and existing
// nodes are reused, but every bubble's radius animation restarts toward its
// (possibly already correct) target.
//
// A failure part-way through (for example a host accessor panicking on an
// unbound datum) leaves the overlay in the partial state produced so far;
// there is no rollback.
func (o *Overlay) Render() error {
	if o.surface == nil {
		return &ConfigurationError{Reason: "no drawing surface attached"}
	}
	if o.container == nil {
		o.container = NewGroup("bubble-overlay")
		o.surface.Root().AddChild(o.container)
	}

	o.radiusRange = RadiusRange(o.overrides, o.host.Width(), o.MaxRelativeSize, o.MinRadius)
	o.host.ApplyRadiusRange(o.radiusRange)

	data := buildDataMap(o.host)
	for _, p := range o.points {
		node := o.resolveNode(p, data)
		o.initializeBubble(node)
	}

	o.host.FadeDeselected(o.container)
	updateWorld(o.surface.Root(), 0, 0, 1)
	return nil
}

// Redraw runs the incremental pass: rebind the current dataset and retarget
// radius and fill on every point's bubble. It never re-derives the radius
// range and never creates the container.
//
// Redraw assumes Render has run at least once; calling it earlier is caller
// misuse and panics.
func (o *Overlay) Redraw() {
	if o.container == nil {
		panic("bubblemap: Redraw before first Render")
	}

	data := buildDataMap(o.host)
	for _, p := range o.points {
		node := o.resolveNode(p, data)
		o.updateBubble(node)
	}

	o.host.FadeDeselected(o.container)
	updateWorld(o.surface.Root(), 0, 0, 1)
}
