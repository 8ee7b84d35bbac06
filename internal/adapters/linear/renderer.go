// Package linear prints a slice as a plain tree for CI and pipes.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/core/ports"
	"go.trai.ch/slicer/internal/engine/loop"
	"go.trai.ch/slicer/internal/ui/output"
	"go.trai.ch/slicer/internal/ui/style"
)

var (
	_ ports.View            = (*Renderer)(nil)
	_ ports.IdleObserver    = (*Renderer)(nil)
	_ ports.SelectionSource = (*Renderer)(nil)
	_ ports.Previewer       = (*Renderer)(nil)
)

// Expander is the part of the coordinator the renderer drives.
type Expander interface {
	RequestExpand(node *domain.SliceNode)
}

// Renderer expands the slice down to a fixed depth and prints it once the
// coordinator goes idle. Duplicates are printed but never expanded.
type Renderer struct {
	stdout io.Writer
	output *termenv.Output
	queue  *loop.Loop
	root   *domain.SliceNode
	depth  int
	follow bool
	ctrl   Expander
	cancel context.CancelFunc

	selected *domain.SliceNode
	preview  []domain.Usage
	printed  int
}

// NewRenderer creates a renderer for the tree rooted at root. It runs the
// session on queue. A nil stdout means os.Stdout.
func NewRenderer(stdout io.Writer, queue *loop.Loop, root *domain.SliceNode, depth int) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Renderer{
		stdout: stdout,
		output: output.NewWithProfile(stdout, output.ColorProfileANSI),
		queue:  queue,
		root:   root,
		depth:  depth,
	}
}

// WithFollow keeps the renderer running after the first print, printing
// again every time the coordinator goes idle.
func (r *Renderer) WithFollow(follow bool) *Renderer {
	r.follow = follow
	return r
}

// Bind attaches the coordinator. It must be called before Run.
func (r *Renderer) Bind(ctrl Expander) {
	r.ctrl = ctrl
}

// Run drives the session queue until the tree has been printed, or until
// ctx is cancelled in follow mode.
func (r *Renderer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	r.cancel = cancel
	return r.queue.Run(ctx)
}

// OnStructureChanged expands the new children of node that are within depth.
func (r *Renderer) OnStructureChanged(node *domain.SliceNode) {
	for _, c := range node.Children() {
		if c.Depth() < r.depth && !c.IsDuplicate() && !c.Materialized() {
			r.ctrl.RequestExpand(c)
		}
	}
}

// OnExpanded does nothing: every materialized node is printed expanded.
func (r *Renderer) OnExpanded(_ *domain.SliceNode) {}

// OnSelected records the node whose preview is printed.
func (r *Renderer) OnSelected(node *domain.SliceNode) {
	r.selected = node
}

// OnIdle prints the tree once the pending preview has been pushed.
func (r *Renderer) OnIdle() {
	r.queue.Defer(r.print)
}

// SelectedItems returns the auto-selected node.
func (r *Renderer) SelectedItems() []any {
	if r.selected == nil {
		return nil
	}
	return []any{r.selected}
}

// ShowUsages records the usages to print below the tree.
func (r *Renderer) ShowUsages(usages []domain.Usage) {
	r.preview = usages
}

func (r *Renderer) print() {
	var b strings.Builder
	if r.printed > 0 {
		b.WriteString("\n")
	}
	r.printed++

	b.WriteString(r.renderUsage(r.root) + "\n")
	if r.root.Materialized() && len(r.root.Children()) == 0 {
		b.WriteString(r.output.String("(no usages)").Faint().String() + "\n")
	}
	r.writeChildren(&b, r.root, "")

	if len(r.preview) > 0 {
		b.WriteString("\n" + r.output.String("preview").Bold().String() + "\n")
		for _, u := range r.preview {
			fmt.Fprintf(&b, "  %s  %s\n", r.output.String(u.Location().String()).Faint(), u.Entity.Text())
		}
	}

	_, _ = io.WriteString(r.stdout, b.String())

	if !r.follow && r.cancel != nil {
		r.cancel()
	}
}

func (r *Renderer) writeChildren(b *strings.Builder, n *domain.SliceNode, prefix string) {
	children := n.Children()
	for i, c := range children {
		branch, next := "├── ", "│   "
		if i == len(children)-1 {
			branch, next = "└── ", "    "
		}
		b.WriteString(prefix + branch + r.renderUsage(c) + "\n")
		r.writeChildren(b, c, prefix+next)
	}
}

func (r *Renderer) renderUsage(n *domain.SliceNode) string {
	u := n.Usage()
	s := u.Entity.ID() + " " + r.output.String(u.Location().String()).Faint().String()
	if n.IsDuplicate() {
		s += " " + r.output.String(style.Duplicate).Foreground(termenv.ANSIYellow).String()
	}
	return s
}
