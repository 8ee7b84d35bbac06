package ports

import (
	"context"

	"go.trai.ch/slicer/internal/core/domain"
)

//go:generate mockgen -source=analysis.go -destination=mocks/mock_analysis.go -package=mocks

// Analyzer walks dependency edges of the analyzed program.
type Analyzer interface {
	// ProduceChildren returns the usages reached from u by one dependency edge.
	// It may be slow and is called from background workers.
	ProduceChildren(ctx context.Context, u domain.Usage) ([]domain.Usage, error)
}

// RevisionSource exposes the analyzed system's global revision stamp.
// It only ever increases; a change means previously computed identity and
// validity facts may be stale.
type RevisionSource interface {
	CurrentRevision() uint64
}

// EntityValidator reports whether an entity still exists in the analyzed system.
type EntityValidator interface {
	IsValid(e domain.Entity) bool
}
