package tui_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/synctest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slicer/internal/adapters/identity"
	"go.trai.ch/slicer/internal/adapters/logger"
	"go.trai.ch/slicer/internal/adapters/program"
	"go.trai.ch/slicer/internal/adapters/telemetry"
	"go.trai.ch/slicer/internal/adapters/tui"
	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/engine/coordinator"
	"go.trai.ch/slicer/internal/engine/dedup"
	"go.trai.ch/slicer/internal/engine/loop"
	"go.trai.ch/slicer/internal/engine/slicetree"
	"go.trai.ch/slicer/internal/ui/style"
)

const programYAML = `entities:
  - {id: x, file: main.go, start: 10, end: 11, line: 2, text: "x := read()"}
  - {id: y, file: main.go, start: 30, end: 31, line: 3, text: "y := x + 1"}
  - {id: z, file: main.go, start: 50, end: 51, line: 4, text: "z := x * 2"}
flows:
  x: [y, z]
  y: [z]
`

func writeProgram(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.yaml")
	require.NoError(t, os.WriteFile(path, []byte(programYAML), 0o600))
	return path
}

func TestModel_DrivenByCoordinator(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		prog, err := program.Open(writeProgram(t))
		require.NoError(t, err)
		start, err := prog.Start("x")
		require.NoError(t, err)

		log := logger.New()
		log.SetOutput(io.Discard)

		q := loop.New()
		cache := dedup.New(identity.NewLocationStrategy(), prog, prog)
		tree := slicetree.New(start, prog, cache)
		m := tui.NewModel(q, tree.Root(), domain.Settings{Preview: true, AutoScroll: true}).
			WithDisableTick().
			WithLinks(cache)
		coord := coordinator.New(tree, q, m, m, log, telemetry.NewNoOpTracer(), 2)
		coord.SetAutoScroll(m.AutoScroll)
		m.Bind(coord)
		prog.SetNavigator(m)
		m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
		t.Cleanup(func() { q.Post(coord.Dispose); q.Drain() })

		settle := func() {
			for {
				synctest.Wait()
				if q.Drain() == 0 {
					return
				}
			}
		}

		q.Post(coord.Start)
		settle()

		y := tree.Root().Children()[0]
		assert.Equal(t, []any{y}, m.SelectedItems())
		view := m.View()
		assert.Contains(t, view, "y main.go:3")
		assert.Contains(t, view, "z main.go:4")
		assert.Contains(t, view, "y := x + 1", "initial selection is previewed")
		assert.Contains(t, view, "at main.go:3", "auto-scroll follows the selection")

		press(m, "right")
		settle()
		assert.Contains(t, m.View(), "z main.go:4 ~", "z under y duplicates z under x")

		press(m, "enter")
		view = m.View()
		assert.Contains(t, view, "at main.go:3")
		assert.NotContains(t, view, "open main.go", "enter opens without taking focus")

		press(m, "down")
		settle()
		dup, primary := tree.Root().Children()[0].Children()[0], tree.Root().Children()[1]
		require.Equal(t, []any{dup}, m.SelectedItems())
		assert.Contains(t, m.View(), "z main.go:4 "+style.Link, "the primary z is linked to the selected one")

		press(m, "d")
		settle()
		assert.Equal(t, []any{primary}, m.SelectedItems())

		press(m, "r")
		settle()
		assert.Equal(t, coordinator.StateIdle, coord.State())
		assert.Contains(t, m.View(), "z main.go:4 ~", "expansion survives a refresh")
	})
}

func TestProgram_QuitsOnKey(t *testing.T) {
	t.Parallel()

	m := tui.NewModel(loop.New(), node("root", 1, nil), domain.Settings{}).WithDisableTick()
	m.Bind(&controller{})

	p := tui.NewProgram(m,
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	require.NoError(t, p.Run(context.Background()))
	assert.Same(t, m, p.Model())
}

func TestProgram_StopsOnCancel(t *testing.T) {
	t.Parallel()

	m := tui.NewModel(loop.New(), node("root", 1, nil), domain.Settings{}).WithDisableTick()
	m.Bind(&controller{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := tui.NewProgram(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	assert.NoError(t, p.Run(ctx))
}
