package linear_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/synctest"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slicer/internal/adapters/identity"
	"go.trai.ch/slicer/internal/adapters/linear"
	"go.trai.ch/slicer/internal/adapters/logger"
	"go.trai.ch/slicer/internal/adapters/program"
	"go.trai.ch/slicer/internal/adapters/telemetry"
	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/engine/coordinator"
	"go.trai.ch/slicer/internal/engine/dedup"
	"go.trai.ch/slicer/internal/engine/loop"
	"go.trai.ch/slicer/internal/engine/slicetree"
)

const programYAML = `entities:
  - {id: x, file: main.go, start: 10, end: 11, line: 2, text: "x := read()"}
  - {id: y, file: main.go, start: 30, end: 31, line: 3, text: "y := x + 1"}
  - {id: z, file: main.go, start: 50, end: 51, line: 4, text: "z := x * 2"}
flows:
  x: [y, z]
  y: [z]
`

type session struct {
	renderer *linear.Renderer
	coord    *coordinator.Coordinator
	queue    *loop.Loop
	out      *bytes.Buffer
}

func newSession(t *testing.T, start string, depth int) *session {
	t.Helper()

	path := filepath.Join(t.TempDir(), "program.yaml")
	require.NoError(t, os.WriteFile(path, []byte(programYAML), 0o600))
	prog, err := program.Open(path)
	require.NoError(t, err)
	usage, err := prog.Start(start)
	require.NoError(t, err)

	log := logger.New()
	log.SetOutput(io.Discard)

	q := loop.New()
	tree := slicetree.New(usage, prog, dedup.New(identity.NewLocationStrategy(), prog, prog))
	out := &bytes.Buffer{}
	r := linear.NewRenderer(out, q, tree.Root(), depth)
	coord := coordinator.New(tree, q, r, r, log, telemetry.NewNoOpTracer(), 2)
	coord.SetPreviewer(r)
	r.Bind(coord)

	q.Post(coord.Start)
	return &session{renderer: r, coord: coord, queue: q, out: out}
}

func TestRenderer_PrintsTree(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name       string
		start      string
		depth      int
		goldenName string
	}{
		{name: "expands to depth without expanding duplicates", start: "x", depth: 3, goldenName: "tree_depth3"},
		{name: "depth one shows direct usages only", start: "x", depth: 1, goldenName: "tree_depth1"},
		{name: "no usages", start: "z", depth: 3, goldenName: "tree_empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				s := newSession(t, tt.start, tt.depth)

				require.NoError(t, s.renderer.Run(context.Background()))
				s.coord.Dispose()

				g := goldie.New(t)
				g.Assert(t, tt.goldenName, s.out.Bytes())
			})
		})
	}
}

func TestRenderer_FollowPrintsOnEveryIdle(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	synctest.Test(t, func(t *testing.T) {
		s := newSession(t, "x", 1)
		s.renderer.WithFollow(true)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- s.renderer.Run(ctx) }()

		synctest.Wait()
		first := s.out.String()
		require.NotEmpty(t, first)

		s.queue.Post(s.coord.Refresh)
		synctest.Wait()

		s.queue.Post(s.coord.Dispose)
		synctest.Wait()
		cancel()
		require.NoError(t, <-done)

		g := goldie.New(t)
		g.Assert(t, "follow", s.out.Bytes())
	})
}

func TestRenderer_SelectedItems(t *testing.T) {
	t.Parallel()

	root := domain.NewSliceNode(domain.Usage{}, nil)
	r := linear.NewRenderer(io.Discard, loop.New(), root, 1)

	assert.Nil(t, r.SelectedItems())

	r.OnSelected(root)
	assert.Equal(t, []any{root}, r.SelectedItems())
}
