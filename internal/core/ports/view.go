package ports

import "go.trai.ch/slicer/internal/core/domain"

//go:generate mockgen -source=view.go -destination=mocks/mock_view.go -package=mocks

// View renders the slice tree. All methods are called on the presentation loop.
type View interface {
	// OnStructureChanged is called after node's children were (re)computed.
	OnStructureChanged(node *domain.SliceNode)
	// OnExpanded asks the view to show node expanded.
	OnExpanded(node *domain.SliceNode)
	// OnSelected asks the view to select node.
	OnSelected(node *domain.SliceNode)
}

// IdleObserver is implemented by views that want to know when all requested
// work has been applied.
type IdleObserver interface {
	OnIdle()
}

// SelectionSource exposes the view's current selection. Items are whatever
// the view shows as rows: slice nodes, or placeholders that wrap nothing.
type SelectionSource interface {
	SelectedItems() []any
}

// Previewer shows the source of usages.
type Previewer interface {
	ShowUsages(usages []domain.Usage)
}

// Navigator opens a location in an editor or reports it to the user.
type Navigator interface {
	Open(loc domain.Location, requestFocus bool) error
}
