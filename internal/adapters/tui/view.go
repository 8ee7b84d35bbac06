package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/engine/coordinator"
	"go.trai.ch/slicer/internal/ui/style"
)

const (
	headerHeight = 1
	footerHeight = 1
	helpText     = "↑/↓ move  ←/→ fold  enter open  d primary  r refresh  p preview  a auto-scroll  q quit"
)

// View renders the UI.
func (m *Model) View() string {
	if m.height == 0 {
		return "Initializing..."
	}

	parts := []string{m.header(), m.treePane()}
	if m.previewOn {
		parts = append(parts, m.previewPane())
	}
	parts = append(parts, m.footer())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) header() string {
	title := titleStyle.Render("SLICE " + m.root.Usage().Entity.ID())

	var busy string
	if m.ctrl != nil && m.ctrl.State() != coordinator.StateIdle {
		busy = " " + m.spinner.View() + m.ctrl.State().String()
	}

	return title + busy + "  " + flag("preview", m.previewOn) + " " + flag("auto-scroll", m.autoScroll)
}

func flag(name string, on bool) string {
	if on {
		return flagOnStyle.Render("[" + name + "]")
	}
	return flagOffStyle.Render("[" + name + "]")
}

func (m *Model) treePane() string {
	h := m.listHeight()
	end := min(m.offset+h, len(m.rows))

	linked := m.linked()
	lines := make([]string, 0, h)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(i, linked))
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(i int, linked map[*domain.SliceNode]bool) string {
	r := m.rows[i]

	cursor := "  "
	if i == m.cursor {
		cursor = style.Cursor.Render("> ")
	}
	indent := strings.Repeat("  ", r.depth)

	switch item := r.item.(type) {
	case *domain.SliceNode:
		line := cursor + indent + m.icon(r) + " " + renderUsage(item)
		if linked[item] {
			line += " " + style.Linked.Render(style.Link)
		}
		return line
	case placeholder:
		return cursor + indent + "  " + placeholderStyle.Render(string(item))
	default:
		return cursor + indent + fmt.Sprint(item)
	}
}

func (m *Model) icon(r row) string {
	switch {
	case r.node.Materialized() && len(r.node.Children()) == 0:
		return style.Leaf
	case m.expanded[r.path] || r.node == m.root:
		return style.Expanded
	default:
		return style.Collapsed
	}
}

func renderUsage(n *domain.SliceNode) string {
	u := n.Usage()
	s := style.Usage.Render(u.Entity.ID()) + " " + style.Location.Render(u.Location().String())
	if n.IsDuplicate() {
		s += " " + style.Dup.Render(style.Duplicate)
	}
	return s
}

func (m *Model) previewPane() string {
	return style.Preview.Width(max(m.width-2, 1)).Render(m.previewContent())
}

func (m *Model) previewContent() string {
	if len(m.preview) == 0 {
		return placeholderStyle.Render("nothing to preview")
	}
	lines := make([]string, 0, len(m.preview))
	for _, u := range m.preview {
		lines = append(lines, style.Location.Render(u.Location().String())+"  "+style.Highlight.Render(u.Entity.Text()))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) footer() string {
	if m.status != "" {
		return helpStyle.Render(m.status)
	}
	return helpStyle.Render(helpText)
}

// listHeight is the number of tree rows that fit between the header and
// the preview pane.
func (m *Model) listHeight() int {
	h := m.height - headerHeight - footerHeight
	if m.previewOn {
		h -= lipgloss.Height(m.previewPane())
	}
	return max(h, 1)
}
