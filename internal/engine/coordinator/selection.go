package coordinator

import (
	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/core/ports"
)

// SelectionBridge reads the view's selection back out as usages and navigables.
type SelectionBridge struct {
	source ports.SelectionSource
}

// NewSelectionBridge creates a bridge over source.
func NewSelectionBridge(source ports.SelectionSource) *SelectionBridge {
	return &SelectionBridge{source: source}
}

// SelectedUsagePayloads returns the usages of the selected slice nodes in
// selection order. Items that are not slice nodes, or that wrap no usage,
// are skipped. The result is nil when nothing qualifies.
func (b *SelectionBridge) SelectedUsagePayloads() []domain.Usage {
	var usages []domain.Usage
	for _, item := range b.source.SelectedItems() {
		node, ok := item.(*domain.SliceNode)
		if !ok || node.Usage().Entity == nil {
			continue
		}
		usages = append(usages, node.Usage())
	}
	return usages
}

// SelectedNavigables returns everything in the selection that can jump to
// its source. An item that is itself navigable wins over the entity it wraps.
func (b *SelectionBridge) SelectedNavigables() []domain.Navigable {
	var out []domain.Navigable
	for _, item := range b.source.SelectedItems() {
		if nav, ok := item.(domain.Navigable); ok {
			out = append(out, nav)
			continue
		}
		node, ok := item.(*domain.SliceNode)
		if !ok {
			continue
		}
		if nav, ok := node.Usage().Entity.(domain.Navigable); ok {
			out = append(out, nav)
		}
	}
	return out
}
