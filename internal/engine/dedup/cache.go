// Package dedup implements the duplicate cache that links slice nodes
// representing the same underlying usage.
//
// A usage's identity is computed from mutable state of the analyzed program,
// so hash buckets computed under one revision may be wrong under the next.
// The cache therefore records the revision it was last keyed under and
// rebuilds itself, eagerly and wholesale, before any operation that observes
// a newer revision.
package dedup

import (
	"cmp"
	"slices"

	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/core/ports"
)

var _ ports.DuplicateCache = (*Cache)(nil)

// member is a node together with the order it was registered in.
type member struct {
	node *domain.SliceNode
	tick uint64
}

// entry holds every live node sharing one payload identity.
type entry struct {
	key     domain.Usage
	hash    uint64
	members []member
}

// Stats describes the cache contents after the last operation.
type Stats struct {
	Revision uint64
	Rebuilds int
	Entries  int
	Nodes    int
	Dropped  int
}

// Cache maps payload identity to the nodes sharing it.
// It is owned by one slice session and must only be used from its presentation loop.
type Cache struct {
	strategy  ports.IdentityStrategy
	revisions ports.RevisionSource
	validator ports.EntityValidator

	buckets map[uint64][]*entry
	order   []*entry
	owner   map[*domain.SliceNode]*entry

	tick     uint64
	revision uint64
	synced   bool
	stats    Stats
}

// New creates an empty cache. The first operation keys it under the current revision.
func New(strategy ports.IdentityStrategy, revisions ports.RevisionSource, validator ports.EntityValidator) *Cache {
	return &Cache{
		strategy:  strategy,
		revisions: revisions,
		validator: validator,
		buckets:   make(map[uint64][]*entry),
		owner:     make(map[*domain.SliceNode]*entry),
	}
}

// LookupOrRegister appends node to the sequence of its payload identity.
// The result lists the nodes that were already there, in insertion order.
// Registering the same node twice does not add it again.
func (c *Cache) LookupOrRegister(node *domain.SliceNode) domain.DuplicateResult {
	c.ensureFresh()

	if e, ok := c.owner[node]; ok {
		return domain.DuplicateResult{Of: e.nodesExcept(node)}
	}

	u := node.Usage()
	h := c.strategy.PayloadHash(u)
	if e := c.find(h, u); e != nil {
		existing := e.nodesExcept(nil)
		c.add(e, node)
		return domain.DuplicateResult{Of: existing}
	}

	c.add(c.newEntry(h, u), node)
	return domain.DuplicateResult{}
}

// Duplicates returns the other live nodes sharing node's payload identity,
// or nil if node is not registered.
func (c *Cache) Duplicates(node *domain.SliceNode) []*domain.SliceNode {
	c.ensureFresh()

	e, ok := c.owner[node]
	if !ok {
		return nil
	}
	return e.nodesExcept(node)
}

// Primary returns the earliest registered live node sharing node's identity.
func (c *Cache) Primary(node *domain.SliceNode) (*domain.SliceNode, bool) {
	c.ensureFresh()

	e, ok := c.owner[node]
	if !ok || len(e.members) == 0 {
		return nil, false
	}
	return e.members[0].node, true
}

// Forget removes nodes from the cache. Identity is not recomputed, so it
// does not depend on the current revision.
func (c *Cache) Forget(nodes ...*domain.SliceNode) {
	for _, n := range nodes {
		e, ok := c.owner[n]
		if !ok {
			continue
		}
		delete(c.owner, n)
		e.members = slices.DeleteFunc(e.members, func(m member) bool { return m.node == n })
		if len(e.members) == 0 {
			c.removeEntry(e)
		}
	}
	c.refreshCounts()
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	return c.stats
}

// ensureFresh rebuilds the cache when the global revision moved since it
// was last keyed.
func (c *Cache) ensureFresh() {
	rev := c.revisions.CurrentRevision()
	if c.synced && rev == c.revision {
		return
	}

	c.rebuild()
	c.revision = rev
	c.synced = true
	c.stats.Revision = rev
	c.stats.Rebuilds++
}

// rebuild drops nodes whose entities are gone and re-keys the rest under the
// current identity semantics. Entries that now compare equal are merged,
// keeping registration order. Duplicate flags on nodes are left alone.
func (c *Cache) rebuild() {
	old := c.order

	c.buckets = make(map[uint64][]*entry, len(old))
	c.order = make([]*entry, 0, len(old))
	c.owner = make(map[*domain.SliceNode]*entry, len(c.owner))

	dropped := 0
	merged := false
	for _, e := range old {
		for _, m := range e.members {
			n := m.node
			if n.Detached() || !c.validator.IsValid(n.Usage().Entity) {
				dropped++
				continue
			}

			u := n.Usage()
			h := c.strategy.PayloadHash(u)
			target := c.find(h, u)
			if target == nil {
				target = c.newEntry(h, u)
			} else if target.members[len(target.members)-1].tick > m.tick {
				merged = true
			}
			target.members = append(target.members, m)
			c.owner[n] = target
		}
	}

	if merged {
		for _, e := range c.order {
			slices.SortStableFunc(e.members, func(a, b member) int {
				return cmp.Compare(a.tick, b.tick)
			})
			e.key = e.members[0].node.Usage()
		}
	}

	c.stats.Dropped = dropped
	c.refreshCounts()
}

func (c *Cache) find(h uint64, u domain.Usage) *entry {
	for _, e := range c.buckets[h] {
		if c.strategy.PayloadEqual(e.key, u) {
			return e
		}
	}
	return nil
}

func (c *Cache) newEntry(h uint64, u domain.Usage) *entry {
	e := &entry{key: u, hash: h}
	c.buckets[h] = append(c.buckets[h], e)
	c.order = append(c.order, e)
	return e
}

func (c *Cache) add(e *entry, n *domain.SliceNode) {
	c.tick++
	e.members = append(e.members, member{node: n, tick: c.tick})
	c.owner[n] = e
	c.refreshCounts()
}

func (c *Cache) removeEntry(e *entry) {
	bucket := slices.DeleteFunc(c.buckets[e.hash], func(x *entry) bool { return x == e })
	if len(bucket) == 0 {
		delete(c.buckets, e.hash)
	} else {
		c.buckets[e.hash] = bucket
	}
	c.order = slices.DeleteFunc(c.order, func(x *entry) bool { return x == e })
}

func (c *Cache) refreshCounts() {
	c.stats.Entries = len(c.order)
	c.stats.Nodes = len(c.owner)
}

func (e *entry) nodesExcept(skip *domain.SliceNode) []*domain.SliceNode {
	out := make([]*domain.SliceNode, 0, len(e.members))
	for _, m := range e.members {
		if m.node != skip {
			out = append(out, m.node)
		}
	}
	return out
}
