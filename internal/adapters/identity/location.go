// Package identity provides payload identity strategies for usages.
package identity

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/core/ports"
)

var _ ports.IdentityStrategy = (*LocationStrategy)(nil)

// LocationStrategy treats two usages as the same occurrence when their
// entities currently occupy the same range of the same file.
// Lines are ignored: they are derived from the range.
type LocationStrategy struct{}

// NewLocationStrategy creates a LocationStrategy.
func NewLocationStrategy() *LocationStrategy {
	return &LocationStrategy{}
}

// PayloadHash hashes the current file and range of the usage.
func (s *LocationStrategy) PayloadHash(u domain.Usage) uint64 {
	loc := u.Location()

	hasher := xxhash.New()
	_, _ = hasher.WriteString(loc.File)
	_, _ = hasher.Write([]byte{0})

	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(loc.Start)) //nolint:gosec // offsets are non-negative
	binary.LittleEndian.PutUint64(buf[8:], uint64(loc.End))   //nolint:gosec // offsets are non-negative
	_, _ = hasher.Write(buf[:])

	return hasher.Sum64()
}

// PayloadEqual compares the current file and range of both usages.
func (s *LocationStrategy) PayloadEqual(a, b domain.Usage) bool {
	la, lb := a.Location(), b.Location()
	return la.File == lb.File && la.Start == lb.Start && la.End == lb.End
}
