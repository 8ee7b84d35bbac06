package ports

import "go.trai.ch/slicer/internal/core/domain"

// DuplicateCache merges nodes that represent the same payload.
type DuplicateCache interface {
	// LookupOrRegister records node under its payload identity and reports
	// which live nodes already shared it.
	LookupOrRegister(node *domain.SliceNode) domain.DuplicateResult
	// Forget removes nodes that are no longer part of the tree.
	Forget(nodes ...*domain.SliceNode)
}
