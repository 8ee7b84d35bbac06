package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slicer/internal/adapters/config"
	"go.trai.ch/slicer/internal/adapters/detector"
	"go.trai.ch/slicer/internal/adapters/identity"
	"go.trai.ch/slicer/internal/adapters/logger"
	"go.trai.ch/slicer/internal/adapters/program"
	"go.trai.ch/slicer/internal/adapters/telemetry"
	"go.trai.ch/slicer/internal/adapters/watcher"
	"go.trai.ch/slicer/internal/app"
	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/core/ports"
	"go.trai.ch/slicer/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const programYAML = `entities:
  - {id: x, file: main.go, start: 10, end: 11, line: 2, text: "x := read()"}
  - {id: y, file: main.go, start: 30, end: 31, line: 3, text: "y := x + 1"}
  - {id: z, file: main.go, start: 50, end: 51, line: 4, text: "z := x * 2"}
flows:
  x: [y, z]
  y: [z]
`

const reloadedYAML = `entities:
  - {id: x, file: main.go, start: 10, end: 11, line: 2, text: "x := read()"}
  - {id: y, file: main.go, start: 30, end: 31, line: 3, text: "y := x + 1"}
  - {id: z, file: main.go, start: 50, end: 51, line: 4, text: "z := x * 2"}
  - {id: w, file: main.go, start: 70, end: 71, line: 5, text: "w := y - 1"}
flows:
  x: [y, z]
  y: [z, w]
`

// syncBuffer is written by the loop goroutine and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func pipeEnv() detector.Env {
	return detector.Env{
		IsTerminal: func() bool { return false },
		Getenv:     func(string) string { return "" },
	}
}

// newApp wires the real adapters the way the graph does, in a temporary
// working directory holding the program file.
func newApp(t *testing.T) (*app.App, string) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "program.yaml")
	require.NoError(t, os.WriteFile(path, []byte(programYAML), 0o600))

	log := logger.New()
	log.SetOutput(io.Discard)

	newWatcher := func() (ports.Watcher, error) { return watcher.NewWatcher(log) }

	a := app.New(
		config.NewLoader(log),
		program.NewLoader(),
		identity.NewLocationStrategy(),
		log,
		telemetry.NewProvider(log),
		newWatcher,
		pipeEnv(),
	)
	t.Cleanup(func() { _ = a.Close(context.Background()) })
	return a, path
}

func TestApp_View_Linear(t *testing.T) {
	a, path := newApp(t)
	out := &syncBuffer{}
	a.WithStdout(out)

	err := a.View(context.Background(), app.ViewOptions{ProgramPath: path, EntityID: "x"})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "x main.go:2\n")
	assert.Contains(t, got, "├── y main.go:3\n")
	assert.Contains(t, got, "│   └── z main.go:4 ~\n")
	assert.Contains(t, got, "└── z main.go:4\n")
	assert.Contains(t, got, "main.go:3  y := x + 1")
}

func TestApp_View_DepthAndPreviewOverrides(t *testing.T) {
	a, path := newApp(t)
	out := &syncBuffer{}
	a.WithStdout(out)

	depth := 1
	err := a.View(context.Background(), app.ViewOptions{
		ProgramPath: path,
		EntityID:    "x",
		Depth:       &depth,
		NoPreview:   true,
	})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "├── y main.go:3\n")
	assert.NotContains(t, got, "│   └── z")
	assert.NotContains(t, got, "preview")
}

func TestApp_View_SettingsFile(t *testing.T) {
	a, path := newApp(t)
	out := &syncBuffer{}
	a.WithStdout(out)

	require.NoError(t, os.WriteFile(domain.SettingsFileName, []byte("preview: false\ndepth: 1\n"), 0o600))

	require.NoError(t, a.View(context.Background(), app.ViewOptions{ProgramPath: path, EntityID: "x"}))
	assert.NotContains(t, out.String(), "preview")
	assert.NotContains(t, out.String(), "│   └── z")
}

func TestApp_View_Errors(t *testing.T) {
	negative := -1
	zero := 0

	tests := []struct {
		name    string
		opts    func(path string) app.ViewOptions
		wantErr error
	}{
		{
			name:    "unknown entity",
			opts:    func(p string) app.ViewOptions { return app.ViewOptions{ProgramPath: p, EntityID: "nope"} },
			wantErr: domain.ErrUnknownEntity,
		},
		{
			name: "missing program",
			opts: func(_ string) app.ViewOptions {
				return app.ViewOptions{ProgramPath: "missing.yaml", EntityID: "x"}
			},
			wantErr: domain.ErrProgramReadFailed,
		},
		{
			name: "invalid output mode",
			opts: func(p string) app.ViewOptions {
				return app.ViewOptions{ProgramPath: p, EntityID: "x", OutputMode: "fancy"}
			},
			wantErr: domain.ErrInvalidOutputMode,
		},
		{
			name: "invalid log format",
			opts: func(p string) app.ViewOptions {
				return app.ViewOptions{ProgramPath: p, EntityID: "x", LogFormat: "xml"}
			},
			wantErr: domain.ErrInvalidSettings,
		},
		{
			name: "negative depth",
			opts: func(p string) app.ViewOptions {
				return app.ViewOptions{ProgramPath: p, EntityID: "x", Depth: &negative}
			},
			wantErr: domain.ErrInvalidSettings,
		},
		{
			name: "no workers",
			opts: func(p string) app.ViewOptions {
				return app.ViewOptions{ProgramPath: p, EntityID: "x", Workers: &zero}
			},
			wantErr: domain.ErrInvalidSettings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, path := newApp(t)
			a.WithStdout(io.Discard)

			err := a.View(context.Background(), tt.opts(path))
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestApp_View_SettingsLoadFails(t *testing.T) {
	ctrl := gomock.NewController(t)

	settings := mocks.NewMockSettingsLoader(ctrl)
	programs := mocks.NewMockProgramLoader(ctrl)
	strategy := mocks.NewMockIdentityStrategy(ctrl)
	log := mocks.NewMockLogger(ctrl)

	settings.EXPECT().Load(gomock.Any()).Return(domain.Settings{}, domain.ErrConfigParseFailed)

	a := app.New(settings, programs, strategy, log, telemetry.NewProvider(nil), nil, pipeEnv())

	err := a.View(context.Background(), app.ViewOptions{ProgramPath: "program.yaml", EntityID: "x"})
	require.ErrorContains(t, err, "failed to load settings")
	assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}

func TestApp_View_StartFails(t *testing.T) {
	ctrl := gomock.NewController(t)

	settings := mocks.NewMockSettingsLoader(ctrl)
	programs := mocks.NewMockProgramLoader(ctrl)
	prog := mocks.NewMockProgram(ctrl)
	log := mocks.NewMockLogger(ctrl)

	settings.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)
	programs.EXPECT().Open("program.yaml").Return(prog, nil)
	prog.EXPECT().Start("x").Return(domain.Usage{}, domain.ErrUnknownEntity)

	a := app.New(settings, programs, mocks.NewMockIdentityStrategy(ctrl), log, telemetry.NewProvider(nil), nil, pipeEnv())

	err := a.View(context.Background(), app.ViewOptions{ProgramPath: "program.yaml", EntityID: "x"})
	require.ErrorIs(t, err, domain.ErrUnknownEntity)
}

func TestApp_View_TUIQuits(t *testing.T) {
	a, path := newApp(t)
	a.WithDisableTick().WithTeaOptions(
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	err := a.View(context.Background(), app.ViewOptions{ProgramPath: path, EntityID: "x", OutputMode: "tui"})
	require.NoError(t, err)
}

func TestApp_View_WatchReloads(t *testing.T) {
	a, path := newApp(t)
	out := &syncBuffer{}
	a.WithStdout(out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.View(ctx, app.ViewOptions{ProgramPath: path, EntityID: "x", Watch: true})
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "└── z main.go:4")
	}, 5*time.Second, 10*time.Millisecond, "first print")

	require.NoError(t, os.WriteFile(path, []byte(reloadedYAML), 0o600))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "w main.go:5")
	}, 5*time.Second, 10*time.Millisecond, "reloaded program is printed")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("view did not stop after cancel")
	}
}
