// Package slicetree holds the logical slice tree of one session.
package slicetree

import (
	"context"

	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/core/ports"
	"go.trai.ch/zerr"
)

// Tree is the root of a slice together with the collaborators used to grow it.
// It is not safe for concurrent use; mutate it only from the presentation loop.
type Tree struct {
	root     *domain.SliceNode
	analyzer ports.Analyzer
	cache    ports.DuplicateCache
}

// New creates a tree rooted at usage and registers the root with cache.
func New(usage domain.Usage, analyzer ports.Analyzer, cache ports.DuplicateCache) *Tree {
	t := &Tree{
		root:     domain.NewSliceNode(usage, nil),
		analyzer: analyzer,
		cache:    cache,
	}
	t.register(t.root)
	return t
}

// Root returns the root node.
func (t *Tree) Root() *domain.SliceNode {
	return t.root
}

// MaterializeChildren computes and memoizes the children of n synchronously.
// Once n is materialized the memoized slice is returned and the analysis is
// not consulted again.
func (t *Tree) MaterializeChildren(ctx context.Context, n *domain.SliceNode) ([]*domain.SliceNode, error) {
	if n.Materialized() {
		return n.Children(), nil
	}

	usages, err := t.Produce(ctx, n)
	if err != nil {
		return nil, err
	}
	if err := t.Attach(n, usages); err != nil {
		return nil, err
	}
	return n.Children(), nil
}

// Produce asks the analysis for the usages one edge away from n without
// touching the tree. It is safe to call from worker goroutines.
func (t *Tree) Produce(ctx context.Context, n *domain.SliceNode) ([]domain.Usage, error) {
	usages, err := t.analyzer.ProduceChildren(ctx, n.Usage())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrChildrenUnavailable.Error()), "usage", n.Usage().String())
	}
	return usages, nil
}

// Attach turns usages into children of n, registering each with the
// duplicate cache in order. It fails without side effects if n is not in the
// tree or was materialized in the meantime.
func (t *Tree) Attach(n *domain.SliceNode, usages []domain.Usage) error {
	if !t.Contains(n) {
		return zerr.With(domain.ErrNodeNotInTree, "usage", n.Usage().String())
	}
	if n.Materialized() {
		return zerr.With(domain.ErrSupersededOperation, "usage", n.Usage().String())
	}

	children := make([]*domain.SliceNode, 0, len(usages))
	for _, u := range usages {
		children = append(children, domain.NewSliceNode(u, n))
	}
	n.SetChildren(children)
	for _, c := range children {
		t.register(c)
	}
	return nil
}

// Replace discards the current children of n and attaches usages in their
// place. Removed nodes are detached and forgotten by the duplicate cache.
func (t *Tree) Replace(n *domain.SliceNode, usages []domain.Usage) error {
	if !t.Contains(n) {
		return zerr.With(domain.ErrNodeNotInTree, "usage", n.Usage().String())
	}

	if removed := n.ResetChildren(); len(removed) > 0 {
		t.cache.Forget(removed...)
	}
	return t.Attach(n, usages)
}

// Contains reports whether n is still reachable from the root.
func (t *Tree) Contains(n *domain.SliceNode) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Detached() {
			return false
		}
		if cur == t.root {
			return true
		}
	}
	return false
}

func (t *Tree) register(n *domain.SliceNode) {
	if res := t.cache.LookupOrRegister(n); !res.IsPrimary() {
		n.MarkDuplicate()
	}
}
