package coordinator_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"go.trai.ch/slicer/internal/adapters/identity"
	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/core/ports"
	"go.trai.ch/slicer/internal/engine/coordinator"
	"go.trai.ch/slicer/internal/engine/dedup"
	"go.trai.ch/slicer/internal/engine/loop"
	"go.trai.ch/slicer/internal/engine/slicetree"
)

type entity struct {
	id  string
	loc domain.Location
}

func (e *entity) ID() string                { return e.id }
func (e *entity) Location() domain.Location { return e.loc }
func (e *entity) Text() string              { return e.id }

// navEntity is an entity that can navigate, recording each call.
type navEntity struct {
	entity
	can   bool
	calls *[]string
}

func (e *navEntity) CanNavigate() bool { return e.can }

func (e *navEntity) Navigate(requestFocus bool) error {
	*e.calls = append(*e.calls, fmt.Sprintf("%s focus=%t", e.id, requestFocus))
	return nil
}

var nextStart atomic.Int64

func usage(id string) domain.Usage {
	start := int(nextStart.Add(10))
	return domain.Usage{Entity: &entity{id: id, loc: domain.Location{File: "F", Start: start, End: start + 5}}}
}

// graph is an analyzer backed by a fixed edge map. Production of a node can
// be held back with a gate until the test releases it.
type graph struct {
	mu    sync.Mutex
	edges map[string][]domain.Usage
	gates map[string]chan struct{}
	calls map[string]int
}

func newGraph() *graph {
	return &graph{
		edges: make(map[string][]domain.Usage),
		gates: make(map[string]chan struct{}),
		calls: make(map[string]int),
	}
}

func (g *graph) link(parent string, children ...domain.Usage) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.edges[parent] = children
}

func (g *graph) hold(id string) (release func()) {
	ch := make(chan struct{})
	g.mu.Lock()
	g.gates[id] = ch
	g.mu.Unlock()
	return func() { close(ch) }
}

func (g *graph) callCount(id string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[id]
}

func (g *graph) ProduceChildren(ctx context.Context, u domain.Usage) ([]domain.Usage, error) {
	id := u.Entity.ID()
	g.mu.Lock()
	g.calls[id]++
	gate := g.gates[id]
	children := g.edges[id]
	g.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return children, nil
}

type fixedRevision uint64

func (r fixedRevision) CurrentRevision() uint64 { return uint64(r) }

type allValid struct{}

func (allValid) IsValid(domain.Entity) bool { return true }

// view records every callback it receives along with the coordinator state.
type view struct {
	coord  *coordinator.Coordinator
	sel    *selection
	events []string
	states []coordinator.State
	onExp  func(n *domain.SliceNode)
}

func (v *view) record(kind string, n *domain.SliceNode) {
	v.events = append(v.events, kind+":"+n.Usage().Entity.ID())
	v.states = append(v.states, v.coord.State())
}

func (v *view) OnStructureChanged(n *domain.SliceNode) { v.record("structure", n) }

func (v *view) OnExpanded(n *domain.SliceNode) {
	v.record("expanded", n)
	if v.onExp != nil {
		v.onExp(n)
	}
}

func (v *view) OnSelected(n *domain.SliceNode) {
	v.record("selected", n)
	v.sel.items = []any{n}
}

func (v *view) OnIdle() {
	v.events = append(v.events, "idle")
	v.states = append(v.states, v.coord.State())
}

type selection struct {
	items []any
}

func (s *selection) SelectedItems() []any { return s.items }

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(error)          {}

type tracer struct {
	mu      sync.Mutex
	started int
	ended   int
}

func (t *tracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	t.mu.Lock()
	t.started++
	t.mu.Unlock()
	return ctx, &span{t: t}
}

type span struct{ t *tracer }

func (s *span) End() {
	s.t.mu.Lock()
	s.t.ended++
	s.t.mu.Unlock()
}
func (s *span) RecordError(error)        {}
func (s *span) SetAttribute(string, any) {}

type harness struct {
	loop   *loop.Loop
	tree   *slicetree.Tree
	coord  *coordinator.Coordinator
	view   *view
	sel    *selection
	graph  *graph
	tracer *tracer
}

// newHarness must be called inside a synctest bubble.
func newHarness(t *testing.T, g *graph, root domain.Usage) *harness {
	t.Helper()

	l := loop.New()
	cache := dedup.New(identity.NewLocationStrategy(), fixedRevision(1), allValid{})
	tree := slicetree.New(root, g, cache)
	sel := &selection{}
	v := &view{sel: sel}
	tr := &tracer{}
	c := coordinator.New(tree, l, v, sel, nopLogger{}, tr, 2)
	v.coord = c

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = l.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		l.Post(c.Dispose)
		synctest.Wait()
		cancel()
		<-done
	})

	return &harness{loop: l, tree: tree, coord: c, view: v, sel: sel, graph: g, tracer: tr}
}

// do runs fn on the loop and waits until everything it triggered has settled.
func (h *harness) do(fn func()) {
	h.loop.Post(fn)
	synctest.Wait()
}
