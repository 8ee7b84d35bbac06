package ports

import "go.trai.ch/slicer/internal/core/domain"

// IdentityStrategy derives payload identity for usages. Both methods read the
// entity's current state, so their answers may change across revisions.
//
//go:generate mockgen -source=identity.go -destination=mocks/mock_identity.go -package=mocks
type IdentityStrategy interface {
	PayloadHash(u domain.Usage) uint64
	PayloadEqual(a, b domain.Usage) bool
}
