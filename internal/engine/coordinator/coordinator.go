// Package coordinator sequences rebuilds, expansions and selection changes
// of a slice tree.
//
// Every exported method must be called from the presentation loop. Children
// are produced on background workers; their results are posted back to the
// loop and applied there, so the tree and the duplicate cache are only ever
// touched by one goroutine.
package coordinator

import (
	"context"
	"runtime"
	"slices"

	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/core/ports"
	"go.trai.ch/slicer/internal/engine/slicetree"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// request is the work of one pass. Requests made while a pass is running are
// merged into a single pending request.
type request struct {
	rebuild     []*domain.SliceNode
	expand      []*domain.SliceNode
	selectFirst bool
	// selectEpoch is the selection epoch when selectFirst was requested.
	selectEpoch uint64
}

func (r *request) merge(o *request) {
	for _, n := range o.rebuild {
		if !slices.Contains(r.rebuild, n) {
			r.rebuild = append(r.rebuild, n)
		}
	}
	for _, n := range o.expand {
		if !slices.Contains(r.expand, n) {
			r.expand = append(r.expand, n)
		}
	}
	if o.selectFirst && !r.selectFirst {
		r.selectFirst = true
		r.selectEpoch = o.selectEpoch
	}
}

// pass is one run through Building, Expanding and Selecting.
type pass struct {
	gen    uint64
	req    *request
	ctx    context.Context
	cancel context.CancelFunc
	span   ports.Span
}

// Coordinator drives the update sequence of one slice session.
type Coordinator struct {
	tree    *slicetree.Tree
	loop    ports.Loop
	view    ports.View
	bridge  *SelectionBridge
	logger  ports.Logger
	tracer  ports.Tracer
	workers int

	ctx    context.Context
	cancel context.CancelFunc

	state    State
	current  *pass
	pending  *request
	kicked   bool
	gen      uint64
	disposed bool

	selectionEpoch   uint64
	previewScheduled bool
	previewer        ports.Previewer
	autoScroll       func() bool
}

// New creates a coordinator for tree. workers bounds the number of
// concurrent child computations; zero or less means one per CPU.
func New(
	tree *slicetree.Tree,
	loop ports.Loop,
	view ports.View,
	selection ports.SelectionSource,
	logger ports.Logger,
	tracer ports.Tracer,
	workers int,
) *Coordinator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		tree:    tree,
		loop:    loop,
		view:    view,
		bridge:  NewSelectionBridge(selection),
		logger:  logger,
		tracer:  tracer,
		workers: workers,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// State returns the current phase.
func (c *Coordinator) State() State {
	return c.state
}

// Bridge returns the selection bridge used for previews and navigation.
func (c *Coordinator) Bridge() *SelectionBridge {
	return c.bridge
}

// SetPreviewer sets where selection previews are pushed. nil disables previews.
func (c *Coordinator) SetPreviewer(p ports.Previewer) {
	c.previewer = p
}

// SetAutoScroll sets the hook that decides whether a selection change also
// navigates to the selected source.
func (c *Coordinator) SetAutoScroll(enabled func() bool) {
	c.autoScroll = enabled
}

// Start requests the initial load: build the root, expand it, then select
// its first child unless the user has selected something by then.
func (c *Coordinator) Start() {
	root := c.tree.Root()
	c.enqueue(&request{
		rebuild:     []*domain.SliceNode{root},
		expand:      []*domain.SliceNode{root},
		selectFirst: true,
		selectEpoch: c.selectionEpoch,
	})
}

// RequestRebuild schedules the children of node to be recomputed.
// Requests for the same node coalesce until the pass that serves them starts.
func (c *Coordinator) RequestRebuild(node *domain.SliceNode) {
	c.enqueue(&request{rebuild: []*domain.SliceNode{node}})
}

// RequestExpand schedules node to be materialized if needed and expanded.
func (c *Coordinator) RequestExpand(node *domain.SliceNode) {
	c.enqueue(&request{expand: []*domain.SliceNode{node}})
}

// Refresh rebuilds the whole tree.
func (c *Coordinator) Refresh() {
	c.RequestRebuild(c.tree.Root())
}

// OnSelectionChanged schedules a preview update for the next idle turn.
// Changes arriving before that turn coalesce into one update that reflects
// the latest selection.
func (c *Coordinator) OnSelectionChanged() {
	c.selectionEpoch++
	if c.disposed || c.previewScheduled {
		return
	}
	c.previewScheduled = true
	c.loop.Defer(c.flushSelection)
}

// NavigateSelected jumps to the source of every selected navigable that can
// navigate. Failures are logged.
func (c *Coordinator) NavigateSelected(requestFocus bool) {
	for _, nav := range c.bridge.SelectedNavigables() {
		if !nav.CanNavigate() {
			continue
		}
		if err := nav.Navigate(requestFocus); err != nil {
			c.logger.Warn("navigation failed", "error", zerr.Wrap(err, domain.ErrNavigationFailed.Error()))
		}
	}
}

// Dispose stops the session. Running work is cancelled, its results are
// discarded and no further previews are pushed.
func (c *Coordinator) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.pending = nil
	c.cancel()
	if c.current != nil {
		c.current.span.RecordError(domain.ErrSupersededOperation)
		c.finishSpan(c.current)
		c.current = nil
	}
	c.state = StateIdle
}

func (c *Coordinator) enqueue(r *request) {
	if c.disposed {
		return
	}
	if c.pending == nil {
		c.pending = r
	} else {
		c.pending.merge(r)
	}
	if c.state == StateIdle && !c.kicked {
		c.kicked = true
		c.loop.Post(c.kick)
	}
}

func (c *Coordinator) kick() {
	c.kicked = false
	if c.disposed || c.state != StateIdle || c.pending == nil {
		return
	}
	c.begin()
}

func (c *Coordinator) begin() {
	r := c.pending
	c.pending = nil
	c.gen++

	ctx, cancel := context.WithCancel(c.ctx)
	ctx, span := c.tracer.Start(ctx, "slice.pass")
	span.SetAttribute("pass.gen", c.gen)
	span.SetAttribute("pass.rebuild", len(r.rebuild))
	span.SetAttribute("pass.expand", len(r.expand))

	p := &pass{gen: c.gen, req: r, ctx: ctx, cancel: cancel, span: span}
	c.current = p
	c.build(p)
}

// build recomputes the children of every rebuild node still in the tree.
func (c *Coordinator) build(p *pass) {
	c.state = StateBuilding
	c.produce(p, c.attached(p.req.rebuild), true)
}

// expand materializes the expand nodes that have no children yet.
func (c *Coordinator) expand(p *pass) {
	c.state = StateExpanding
	var todo []*domain.SliceNode
	for _, n := range c.attached(p.req.expand) {
		if !n.Materialized() {
			todo = append(todo, n)
		}
	}
	c.produce(p, todo, false)
}

// produce computes children of nodes on background workers, applies each
// result on the loop, and then posts the end of the phase.
func (c *Coordinator) produce(p *pass, nodes []*domain.SliceNode, replace bool) {
	if len(nodes) == 0 {
		c.loop.Post(func() { c.phaseDone(p) })
		return
	}

	go func() {
		g, ctx := errgroup.WithContext(p.ctx)
		g.SetLimit(c.workers)
		for _, n := range nodes {
			g.Go(func() error {
				usages, err := c.tree.Produce(ctx, n)
				c.loop.Post(func() { c.apply(p, n, usages, err, replace) })
				return nil
			})
		}
		_ = g.Wait()
		c.loop.Post(func() { c.phaseDone(p) })
	}()
}

func (c *Coordinator) apply(p *pass, n *domain.SliceNode, usages []domain.Usage, err error, replace bool) {
	if !c.live(p) {
		c.logger.Debug("dropping result", "usage", n.Usage().String(), "reason", domain.ErrSupersededOperation.Error())
		return
	}
	if err != nil {
		c.logger.Warn("could not compute children", "usage", n.Usage().String(), "error", err)
		p.span.RecordError(err)
		return
	}
	if !c.tree.Contains(n) {
		c.logger.Debug("dropping result", "usage", n.Usage().String(), "reason", domain.ErrStaleEntity.Error())
		return
	}

	if replace && n.Materialized() {
		err = c.tree.Replace(n, usages)
	} else {
		err = c.tree.Attach(n, usages)
	}
	if err != nil {
		c.logger.Debug("dropping result", "usage", n.Usage().String(), "reason", err.Error())
		return
	}
	c.view.OnStructureChanged(n)
}

func (c *Coordinator) phaseDone(p *pass) {
	if !c.live(p) {
		return
	}

	switch c.state {
	case StateBuilding:
		c.expand(p)
	case StateExpanding:
		for _, n := range c.attached(p.req.expand) {
			c.view.OnExpanded(n)
		}
		c.selectFirst(p)
		c.finish(p)
	default:
		c.finish(p)
	}
}

// selectFirst applies the initial selection, unless the user changed the
// selection after it was requested.
func (c *Coordinator) selectFirst(p *pass) {
	if !p.req.selectFirst {
		return
	}
	c.state = StateSelecting
	if c.selectionEpoch != p.req.selectEpoch {
		c.logger.Debug("skipping initial selection", "reason", domain.ErrSupersededOperation.Error())
		return
	}
	first, ok := c.tree.Root().FirstChild()
	if !ok {
		return
	}
	c.view.OnSelected(first)
	c.OnSelectionChanged()
}

func (c *Coordinator) finish(p *pass) {
	c.finishSpan(p)
	c.current = nil
	c.state = StateIdle

	if c.pending != nil {
		c.begin()
		return
	}
	if obs, ok := c.view.(ports.IdleObserver); ok {
		obs.OnIdle()
	}
}

func (c *Coordinator) finishSpan(p *pass) {
	p.cancel()
	p.span.End()
}

func (c *Coordinator) flushSelection() {
	c.previewScheduled = false
	if c.disposed {
		return
	}
	if c.previewer != nil {
		if usages := c.bridge.SelectedUsagePayloads(); len(usages) > 0 {
			c.previewer.ShowUsages(usages)
		}
	}
	if c.autoScroll != nil && c.autoScroll() {
		c.NavigateSelected(false)
	}
}

func (c *Coordinator) live(p *pass) bool {
	return !c.disposed && c.current == p && p.ctx.Err() == nil
}

func (c *Coordinator) attached(nodes []*domain.SliceNode) []*domain.SliceNode {
	out := make([]*domain.SliceNode, 0, len(nodes))
	for _, n := range nodes {
		if c.tree.Contains(n) {
			out = append(out, n)
			continue
		}
		c.logger.Debug("skipping node", "usage", n.Usage().String(), "reason", domain.ErrNodeNotInTree.Error())
	}
	return out
}
