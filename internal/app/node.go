package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slicer/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/slicer/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/slicer/internal/adapters/identity"  //nolint:depguard // Wired in app layer
	"go.trai.ch/slicer/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/slicer/internal/adapters/program"   //nolint:depguard // Wired in app layer
	"go.trai.ch/slicer/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/slicer/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/slicer/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the wired application and the logger the CLI reports
// errors through.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			program.NodeID,
			identity.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			watcher.NodeID,
			detector.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	programs, err := graft.Dep[ports.ProgramLoader](ctx)
	if err != nil {
		return nil, err
	}

	strategy, err := graft.Dep[ports.IdentityStrategy](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[*telemetry.Provider](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	env, err := graft.Dep[detector.Env](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, programs, strategy, log, provider, newWatcher, env), nil
}
