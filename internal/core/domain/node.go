package domain

// SliceNode is a tree node wrapping one usage.
//
// Tree identity is pointer identity: two nodes with equal payloads are still
// distinct entries, which is what lets a duplicate be linked to its primary
// while both stay visible.
type SliceNode struct {
	usage        Usage
	parent       *SliceNode
	children     []*SliceNode
	materialized bool
	duplicate    bool
	detached     bool
	depth        int
}

// NewSliceNode creates a node for usage under parent. parent is nil for the root.
func NewSliceNode(usage Usage, parent *SliceNode) *SliceNode {
	n := &SliceNode{
		usage:  usage,
		parent: parent,
	}
	if parent != nil {
		n.depth = parent.depth + 1
	}
	return n
}

// Usage returns the wrapped usage.
func (n *SliceNode) Usage() Usage { return n.usage }

// Parent returns the parent node, or nil for the root.
func (n *SliceNode) Parent() *SliceNode { return n.parent }

// Depth is the distance from the root.
func (n *SliceNode) Depth() int { return n.depth }

// Children returns the memoized children. It is nil until the node is materialized.
func (n *SliceNode) Children() []*SliceNode { return n.children }

// Materialized reports whether the children have been computed.
func (n *SliceNode) Materialized() bool { return n.materialized }

// FirstChild returns the first memoized child, if any.
func (n *SliceNode) FirstChild() (*SliceNode, bool) {
	if len(n.children) == 0 {
		return nil, false
	}
	return n.children[0], true
}

// IsDuplicate reports whether another node already represented the same
// payload when this one was registered.
func (n *SliceNode) IsDuplicate() bool { return n.duplicate }

// MarkDuplicate flags the node as a duplicate. It is idempotent.
func (n *SliceNode) MarkDuplicate() { n.duplicate = true }

// Detached reports whether the node was cut out of its tree by a refresh.
func (n *SliceNode) Detached() bool { return n.detached }

// SetChildren memoizes children. It returns false, leaving the node untouched,
// if the node was already materialized.
func (n *SliceNode) SetChildren(children []*SliceNode) bool {
	if n.materialized {
		return false
	}
	n.children = children
	n.materialized = true
	return true
}

// ResetChildren forgets the memoized children so they can be recomputed.
// The removed subtrees are marked detached and returned, depth first.
func (n *SliceNode) ResetChildren() []*SliceNode {
	var removed []*SliceNode
	var walk func(*SliceNode)
	walk = func(c *SliceNode) {
		c.detached = true
		removed = append(removed, c)
		for _, gc := range c.children {
			walk(gc)
		}
	}
	for _, c := range n.children {
		walk(c)
	}
	n.children = nil
	n.materialized = false
	return removed
}

// DuplicateResult is the outcome of registering a node with the duplicate cache.
type DuplicateResult struct {
	// Of lists the nodes that already represented the same payload, in
	// insertion order. It is empty for a primary node.
	Of []*SliceNode
}

// IsPrimary reports whether no live node shared the payload.
func (r DuplicateResult) IsPrimary() bool { return len(r.Of) == 0 }
