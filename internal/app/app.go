// Package app implements the application layer for slicer.
package app

import (
	"context"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/slicer/internal/adapters/detector"
	"go.trai.ch/slicer/internal/adapters/linear"
	"go.trai.ch/slicer/internal/adapters/telemetry"
	"go.trai.ch/slicer/internal/adapters/tui"
	"go.trai.ch/slicer/internal/adapters/watcher"
	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/core/ports"
	"go.trai.ch/slicer/internal/engine/coordinator"
	"go.trai.ch/slicer/internal/engine/dedup"
	"go.trai.ch/slicer/internal/engine/loop"
	"go.trai.ch/slicer/internal/engine/slicetree"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	settings   ports.SettingsLoader
	programs   ports.ProgramLoader
	identity   ports.IdentityStrategy
	logger     ports.Logger
	telemetry  *telemetry.Provider
	newWatcher ports.WatcherFactory
	env        detector.Env

	stdout      io.Writer
	teaOptions  []tea.ProgramOption
	disableTick bool
}

// New creates a new App instance.
func New(
	settings ports.SettingsLoader,
	programs ports.ProgramLoader,
	identity ports.IdentityStrategy,
	log ports.Logger,
	provider *telemetry.Provider,
	newWatcher ports.WatcherFactory,
	env detector.Env,
) *App {
	return &App{
		settings:   settings,
		programs:   programs,
		identity:   identity,
		logger:     log,
		telemetry:  provider,
		newWatcher: newWatcher,
		env:        env,
		stdout:     os.Stdout,
	}
}

// WithStdout redirects the linear view.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDisableTick disables the TUI spinner.
// This is primarily used for testing with synctest to avoid goroutine deadlocks.
func (a *App) WithDisableTick() *App {
	a.disableTick = true
	return a
}

// ViewOptions configure one slice session. Nil overrides keep the value
// from the settings file.
type ViewOptions struct {
	ProgramPath string
	EntityID    string
	OutputMode  string
	LogFormat   string
	Verbose     bool
	Watch       bool
	NoPreview   bool
	AutoScroll  bool
	Depth       *int
	Workers     *int
}

func (o *ViewOptions) apply(s domain.Settings) domain.Settings {
	if o.NoPreview {
		s.Preview = false
	}
	if o.AutoScroll {
		s.AutoScroll = true
	}
	if o.Depth != nil {
		s.Depth = *o.Depth
	}
	if o.Workers != nil {
		s.Workers = *o.Workers
	}
	return s
}

// runner is a view that owns the presentation loop while it runs.
type runner interface {
	Run(ctx context.Context) error
}

// View opens the program, slices it from the requested entity and shows
// the result until the view exits.
//
//nolint:cyclop // orchestration function
func (a *App) View(ctx context.Context, opts ViewOptions) error {
	// 1. Logging and output mode
	if err := a.configureLogger(opts); err != nil {
		return err
	}
	requested, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return err
	}
	mode := detector.Resolve(requested, a.env)

	// 2. Settings
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}
	settings, err := a.settings.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}
	settings = opts.apply(settings)
	if settings.Workers < 1 || settings.Depth < 0 {
		return zerr.With(zerr.With(domain.ErrInvalidSettings, "workers", settings.Workers), "depth", settings.Depth)
	}

	// 3. Program and slice tree
	prog, err := a.programs.Open(opts.ProgramPath)
	if err != nil {
		return err
	}
	start, err := prog.Start(opts.EntityID)
	if err != nil {
		return err
	}
	cache := dedup.New(a.identity, prog, prog)
	tree := slicetree.New(start, prog, cache)
	queue := loop.New()
	tracer := a.telemetry.Tracer()

	a.logger.Debug("starting slice",
		"program", prog.Path(),
		"entity", opts.EntityID,
		"mode", mode.String(),
		"workers", settings.Workers,
	)

	// 4. View and coordinator
	var (
		view  runner
		coord *coordinator.Coordinator
	)
	if mode == detector.ModeTUI {
		model := tui.NewModel(queue, tree.Root(), settings).WithLinks(cache)
		if a.disableTick {
			model = model.WithDisableTick()
		}
		coord = coordinator.New(tree, queue, model, model, a.logger, tracer, settings.Workers)
		coord.SetAutoScroll(model.AutoScroll)
		model.Bind(coord)
		prog.SetNavigator(model)
		view = tui.NewProgram(model, a.teaOptions...)
	} else {
		r := linear.NewRenderer(a.stdout, queue, tree.Root(), settings.Depth).WithFollow(opts.Watch)
		coord = coordinator.New(tree, queue, r, r, a.logger, tracer, settings.Workers)
		if settings.Preview {
			coord.SetPreviewer(r)
		}
		r.Bind(coord)
		view = r
	}
	defer coord.Dispose()
	queue.Post(coord.Start)

	// 5. Run the view and, if asked, the file watcher
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return view.Run(ctx)
	})

	if opts.Watch {
		g.Go(func() error {
			return a.watch(ctx, prog, queue, coord, settings.Debounce)
		})
	}

	return g.Wait()
}

// Close flushes telemetry.
func (a *App) Close(ctx context.Context) error {
	return a.telemetry.Shutdown(ctx)
}

func (a *App) configureLogger(opts ViewOptions) error {
	type configurable interface {
		SetJSON(enable bool)
		SetVerbose(enable bool)
	}
	l, ok := a.logger.(configurable)
	if !ok {
		return nil
	}

	switch opts.LogFormat {
	case "", "text":
		l.SetJSON(false)
	case "json":
		l.SetJSON(true)
	default:
		return zerr.With(domain.ErrInvalidSettings, "log-format", opts.LogFormat)
	}
	l.SetVerbose(opts.Verbose)
	return nil
}

// watch reloads the program whenever its file settles after a change and
// refreshes the tree from the new revision.
func (a *App) watch(
	ctx context.Context,
	prog ports.Program,
	queue ports.Loop,
	coord *coordinator.Coordinator,
	window time.Duration,
) error {
	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(ctx, prog.Path()); err != nil {
		return err
	}

	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		queue.Post(func() { a.reload(prog, coord, paths) })
	})
	defer debouncer.Stop()

	for event := range w.Events() {
		debouncer.Add(event.Path)
	}
	return nil
}

func (a *App) reload(prog ports.Program, coord *coordinator.Coordinator, paths []string) {
	if err := prog.Reload(); err != nil {
		a.logger.Warn("reload failed, keeping the previous program", "error", err)
		return
	}
	a.logger.Debug("program reloaded", "paths", paths, "revision", prog.CurrentRevision())
	coord.Refresh()
}
