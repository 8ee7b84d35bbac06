// Package tui provides the interactive slice tree view.
//
// The bubbletea event loop doubles as the presentation loop: work posted to
// the session's queue is drained inside Update, so tree callbacks, key
// handling and coordinator calls all happen on one goroutine.
package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/core/ports"
	"go.trai.ch/slicer/internal/engine/coordinator"
	"go.trai.ch/slicer/internal/engine/loop"
)

var (
	_ ports.View            = (*Model)(nil)
	_ ports.SelectionSource = (*Model)(nil)
	_ ports.Previewer       = (*Model)(nil)
	_ ports.Navigator       = (*Model)(nil)
)

// Controller is the part of the coordinator the view drives.
type Controller interface {
	State() coordinator.State
	RequestExpand(node *domain.SliceNode)
	Refresh()
	OnSelectionChanged()
	NavigateSelected(requestFocus bool)
	SetPreviewer(p ports.Previewer)
}

// Links finds the nodes that share a node's payload.
type Links interface {
	Duplicates(node *domain.SliceNode) []*domain.SliceNode
	Primary(node *domain.SliceNode) (*domain.SliceNode, bool)
}

// placeholder is a row that wraps no usage.
type placeholder string

const (
	placeholderComputing placeholder = "computing…"
	placeholderEmpty     placeholder = "no usages"
)

// row is one visible line of the tree.
type row struct {
	item  any
	node  *domain.SliceNode
	depth int
	path  string
}

// workMsg wakes the model to drain the session queue.
type workMsg struct{}

// Model is the bubbletea model of a slice session.
type Model struct {
	queue *loop.Loop
	ctrl  Controller
	links Links
	root  *domain.SliceNode

	quit     chan struct{}
	quitOnce sync.Once

	// expanded is keyed by path so expansion survives a refresh that
	// replaces the nodes. The cursor follows the node itself.
	expanded map[string]bool
	rows     []row
	cursor   int
	offset   int
	width    int
	height   int

	preview    []domain.Usage
	previewOn  bool
	autoScroll bool
	status     string

	spinner     spinner.Model
	disableTick bool
}

// NewModel creates the view of the tree rooted at root. Work posted to
// queue runs inside Update.
func NewModel(queue *loop.Loop, root *domain.SliceNode, settings domain.Settings) *Model {
	m := &Model{
		queue:      queue,
		root:       root,
		quit:       make(chan struct{}),
		expanded:   make(map[string]bool),
		previewOn:  settings.Preview,
		autoScroll: settings.AutoScroll,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
	}
	m.refreshRows(false)
	return m
}

// WithDisableTick stops the spinner from scheduling ticks.
func (m *Model) WithDisableTick() *Model {
	m.disableTick = true
	return m
}

// WithLinks highlights the rows that share the selected row's payload and
// lets the user jump to the first of them.
func (m *Model) WithLinks(links Links) *Model {
	m.links = links
	return m
}

// Bind attaches the coordinator. It must be called before the model runs.
func (m *Model) Bind(ctrl Controller) {
	m.ctrl = ctrl
	if m.previewOn {
		ctrl.SetPreviewer(m)
	}
}

// AutoScroll reports whether selection changes should also navigate.
func (m *Model) AutoScroll() bool {
	return m.autoScroll
}

// Init starts waiting for posted work.
func (m *Model) Init() tea.Cmd {
	if m.disableTick {
		return m.waitForWork()
	}
	return tea.Batch(m.waitForWork(), m.spinner.Tick)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workMsg:
		m.queue.Drain()
		return m, m.waitForWork()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ensureVisible()

	case spinner.TickMsg:
		if m.disableTick {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.stop()
		return m, tea.Quit
	case "k", "up":
		m.moveTo(m.cursor - 1)
	case "j", "down":
		m.moveTo(m.cursor + 1)
	case "g", "home":
		m.moveTo(0)
	case "G", "end":
		m.moveTo(len(m.rows) - 1)
	case "l", "right", " ":
		m.expandSelected()
	case "h", "left":
		m.collapseSelected()
	case "enter":
		m.ctrl.NavigateSelected(false)
	case "d":
		m.jumpToPrimary()
	case "r":
		m.status = ""
		m.ctrl.Refresh()
	case "p":
		m.togglePreview()
	case "a":
		m.autoScroll = !m.autoScroll
	}
	return m, nil
}

func (m *Model) waitForWork() tea.Cmd {
	wake, quit := m.queue.Wake(), m.quit
	return func() tea.Msg {
		select {
		case <-wake:
			return workMsg{}
		case <-quit:
			return nil
		}
	}
}

func (m *Model) stop() {
	m.quitOnce.Do(func() { close(m.quit) })
}

// OnStructureChanged re-renders node's subtree. Children whose path was
// expanded before a refresh are expanded again.
func (m *Model) OnStructureChanged(node *domain.SliceNode) {
	for _, c := range node.Children() {
		if m.expanded[pathOf(c)] && !c.Materialized() {
			m.ctrl.RequestExpand(c)
		}
	}
	m.refreshRows(true)
}

// OnExpanded shows node expanded.
func (m *Model) OnExpanded(node *domain.SliceNode) {
	m.expanded[pathOf(node)] = true
	m.refreshRows(true)
}

// OnSelected moves the cursor to node, expanding its ancestors.
func (m *Model) OnSelected(node *domain.SliceNode) {
	m.reveal(node)
}

// reveal expands the ancestors of node and puts the cursor on it.
func (m *Model) reveal(node *domain.SliceNode) bool {
	for p := node.Parent(); p != nil; p = p.Parent() {
		m.expanded[pathOf(p)] = true
	}
	m.refreshRows(false)
	i := m.indexOfNode(node)
	if i < 0 {
		return false
	}
	m.cursor = i
	m.ensureVisible()
	return true
}

// SelectedItems returns the row under the cursor.
func (m *Model) SelectedItems() []any {
	if len(m.rows) == 0 {
		return nil
	}
	return []any{m.rows[m.cursor].item}
}

// ShowUsages replaces the preview pane contents.
func (m *Model) ShowUsages(usages []domain.Usage) {
	m.preview = usages
}

// Open reports the location in the status line.
func (m *Model) Open(loc domain.Location, requestFocus bool) error {
	verb := "at"
	if requestFocus {
		verb = "open"
	}
	m.status = verb + " " + loc.String()
	return nil
}

func (m *Model) moveTo(i int) {
	i = max(0, min(i, len(m.rows)-1))
	if i == m.cursor {
		return
	}
	m.cursor = i
	m.ensureVisible()
	m.ctrl.OnSelectionChanged()
}

// selectedNode returns the node under the cursor, if the row wraps one.
func (m *Model) selectedNode() (*domain.SliceNode, bool) {
	if len(m.rows) == 0 {
		return nil, false
	}
	node, ok := m.rows[m.cursor].item.(*domain.SliceNode)
	return node, ok
}

// linked returns the other nodes sharing the selected node's payload.
func (m *Model) linked() map[*domain.SliceNode]bool {
	node, ok := m.selectedNode()
	if !ok || m.links == nil {
		return nil
	}
	dups := m.links.Duplicates(node)
	if len(dups) == 0 {
		return nil
	}
	set := make(map[*domain.SliceNode]bool, len(dups))
	for _, d := range dups {
		set[d] = true
	}
	return set
}

func (m *Model) jumpToPrimary() {
	node, ok := m.selectedNode()
	if !ok || m.links == nil {
		return
	}
	primary, ok := m.links.Primary(node)
	if !ok || primary == node {
		return
	}
	if m.reveal(primary) {
		m.ctrl.OnSelectionChanged()
	}
}

func (m *Model) expandSelected() {
	node, ok := m.selectedNode()
	if !ok {
		return
	}
	path := m.rows[m.cursor].path
	if m.expanded[path] {
		m.moveTo(m.cursor + 1)
		return
	}
	m.expanded[path] = true
	if !node.Materialized() {
		m.ctrl.RequestExpand(node)
	}
	m.refreshRows(true)
}

func (m *Model) collapseSelected() {
	if len(m.rows) == 0 {
		return
	}
	r := m.rows[m.cursor]
	if node, ok := r.item.(*domain.SliceNode); ok && m.expanded[r.path] && node != m.root {
		delete(m.expanded, r.path)
		m.refreshRows(true)
		return
	}
	parent := r.node
	if _, ok := r.item.(*domain.SliceNode); ok {
		parent = r.node.Parent()
	}
	if parent == nil {
		return
	}
	m.moveTo(m.indexOfNode(parent))
}

func (m *Model) togglePreview() {
	m.previewOn = !m.previewOn
	m.preview = nil
	if !m.previewOn {
		m.ctrl.SetPreviewer(nil)
		return
	}
	m.ctrl.SetPreviewer(m)
	m.ctrl.OnSelectionChanged()
}

// refreshRows flattens the visible tree, keeping the cursor on the same
// row. A row whose node was replaced by a refresh is found again by path,
// falling back to the closest surviving ancestor. With notify set, a cursor
// that had to move is reported as a selection change.
func (m *Model) refreshRows(notify bool) {
	var prev row
	hadRows := len(m.rows) > 0
	if hadRows {
		prev = m.rows[m.cursor]
	}

	m.rows = m.rows[:0]
	m.flatten(m.root, 0, pathOf(m.root))

	m.cursor = 0
	if hadRows {
		if i := m.indexOfRow(prev); i >= 0 {
			m.cursor = i
		} else {
			for p := prev.path; p != ""; p = parentPath(p) {
				if i := m.indexOf(p); i >= 0 {
					m.cursor = i
					break
				}
			}
		}
	}
	m.ensureVisible()

	if notify && hadRows && m.rows[m.cursor].path != prev.path {
		m.ctrl.OnSelectionChanged()
	}
}

func (m *Model) flatten(n *domain.SliceNode, depth int, path string) {
	m.rows = append(m.rows, row{item: n, node: n, depth: depth, path: path})
	if !m.expanded[path] && n != m.root {
		return
	}
	switch {
	case !n.Materialized():
		m.rows = append(m.rows, row{item: placeholderComputing, node: n, depth: depth + 1, path: path + "/…"})
	case len(n.Children()) == 0 && n == m.root:
		m.rows = append(m.rows, row{item: placeholderEmpty, node: n, depth: depth + 1, path: path + "/∅"})
	default:
		seen := make(map[string]int, len(n.Children()))
		for _, c := range n.Children() {
			id := c.Usage().Entity.ID()
			m.flatten(c, depth+1, path+"/"+segment(id, seen[id]))
			seen[id]++
		}
	}
}

func (m *Model) indexOf(path string) int {
	for i, r := range m.rows {
		if r.path == path {
			return i
		}
	}
	return -1
}

func (m *Model) indexOfNode(n *domain.SliceNode) int {
	for i, r := range m.rows {
		if r.item == n {
			return i
		}
	}
	return -1
}

// indexOfRow finds the row showing the same item. Placeholders are matched
// through the node they stand in for.
func (m *Model) indexOfRow(want row) int {
	for i, r := range m.rows {
		if r.item == want.item && r.node == want.node {
			return i
		}
	}
	return -1
}

func (m *Model) ensureVisible() {
	if m.height == 0 {
		return
	}
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

// pathOf joins the segments from the root down to n. A segment is the
// entity id, suffixed with the number of earlier siblings wrapping the same
// entity so that such siblings stay apart.
func pathOf(n *domain.SliceNode) string {
	var segs []string
	for ; n != nil; n = n.Parent() {
		segs = append(segs, segment(n.Usage().Entity.ID(), siblingIndex(n)))
	}
	var b strings.Builder
	for i := len(segs) - 1; i >= 0; i-- {
		b.WriteString(segs[i])
		if i > 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}

// siblingIndex counts the earlier siblings of n with the same entity id.
func siblingIndex(n *domain.SliceNode) int {
	p := n.Parent()
	if p == nil {
		return 0
	}
	id := n.Usage().Entity.ID()
	k := 0
	for _, c := range p.Children() {
		if c == n {
			return k
		}
		if c.Usage().Entity.ID() == id {
			k++
		}
	}
	return 0
}

func segment(id string, k int) string {
	if k == 0 {
		return id
	}
	return id + "#" + strconv.Itoa(k)
}

func parentPath(p string) string {
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return ""
	}
	return p[:i]
}
