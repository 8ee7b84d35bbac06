// Package program reads an analyzed program from a YAML model file.
//
// The model lists entities with their source ranges and the dependency
// edges between them. Reloading the file keeps entity objects whose id
// survives, updating their ranges in place, and advances the revision.
package program

import (
	"context"
	"os"
	"sync"

	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	_ ports.Program       = (*Program)(nil)
	_ ports.ProgramLoader = (*Loader)(nil)
	_ domain.Navigable    = (*Entity)(nil)
)

// Loader opens program model files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Open reads the program at path.
func (l *Loader) Open(path string) (ports.Program, error) {
	return Open(path)
}

// Program is an analyzed program backed by a model file.
// It is safe for concurrent use.
type Program struct {
	path string

	mu        sync.RWMutex
	entities  map[string]*Entity
	flows     map[string][]string
	revision  uint64
	navigator ports.Navigator
}

// Entity is one element of a Program. Its range may change on reload.
type Entity struct {
	program *Program
	id      string

	// Guarded by program.mu.
	loc   domain.Location
	text  string
	valid bool
}

// Open reads the program at path. The first revision is 1.
func Open(path string) (*Program, error) {
	file, err := read(path)
	if err != nil {
		return nil, err
	}

	p := &Program{
		path:     path,
		entities: make(map[string]*Entity, len(file.Entities)),
	}
	p.merge(file)
	return p, nil
}

// Path is the file the program was read from.
func (p *Program) Path() string {
	return p.path
}

// SetNavigator routes entity navigation to n.
func (p *Program) SetNavigator(n ports.Navigator) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.navigator = n
}

// Reload re-reads the model file. On error the program is left unchanged.
func (p *Program) Reload() error {
	file, err := read(p.path)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.merge(file)
	return nil
}

// merge applies file and advances the revision. Callers hold mu, or own p exclusively.
func (p *Program) merge(file *File) {
	seen := make(map[string]bool, len(file.Entities))
	for _, dto := range file.Entities {
		seen[dto.ID] = true
		e, ok := p.entities[dto.ID]
		if !ok {
			e = &Entity{program: p, id: dto.ID}
			p.entities[dto.ID] = e
		}
		e.loc = domain.Location{File: dto.File, Start: dto.Start, End: dto.End, Line: dto.Line}
		e.text = dto.Text
		e.valid = true
	}
	for id, e := range p.entities {
		if !seen[id] {
			e.valid = false
		}
	}
	p.flows = file.Flows
	p.revision++
}

// Start returns the usage a slice of entityID begins from.
func (p *Program) Start(entityID string) (domain.Usage, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	e, ok := p.entities[entityID]
	if !ok || !e.valid {
		return domain.Usage{}, zerr.With(domain.ErrUnknownEntity, "id", entityID)
	}
	return domain.Usage{Entity: e, Revision: p.revision}, nil
}

// ProduceChildren returns the usages u flows into. An entity that is no
// longer part of the program has no children.
func (p *Program) ProduceChildren(ctx context.Context, u domain.Usage) ([]domain.Usage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	e, ok := u.Entity.(*Entity)
	if !ok || e.program != p || !e.valid {
		return nil, nil
	}

	targets := p.flows[e.id]
	usages := make([]domain.Usage, 0, len(targets))
	for _, id := range targets {
		usages = append(usages, domain.Usage{Entity: p.entities[id], Revision: p.revision})
	}
	return usages, nil
}

// CurrentRevision returns the number of times the program has been read.
func (p *Program) CurrentRevision() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.revision
}

// IsValid reports whether e is an entity of p that survived the last reload.
func (p *Program) IsValid(e domain.Entity) bool {
	ent, ok := e.(*Entity)
	if !ok || ent.program != p {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return ent.valid
}

// ID is the entity's id in the model file.
func (e *Entity) ID() string {
	return e.id
}

// Location reports the entity's current range.
func (e *Entity) Location() domain.Location {
	e.program.mu.RLock()
	defer e.program.mu.RUnlock()
	return e.loc
}

// Text is the entity's source snippet.
func (e *Entity) Text() string {
	e.program.mu.RLock()
	defer e.program.mu.RUnlock()
	return e.text
}

// CanNavigate reports whether the entity is still valid and a navigator is set.
func (e *Entity) CanNavigate() bool {
	e.program.mu.RLock()
	defer e.program.mu.RUnlock()
	return e.valid && e.program.navigator != nil
}

// Navigate opens the entity's location.
func (e *Entity) Navigate(requestFocus bool) error {
	e.program.mu.RLock()
	nav, loc, valid := e.program.navigator, e.loc, e.valid
	e.program.mu.RUnlock()

	if !valid {
		return zerr.With(domain.ErrStaleEntity, "id", e.id)
	}
	if nav == nil {
		return zerr.With(domain.ErrNavigationFailed, "id", e.id)
	}
	if err := nav.Open(loc, requestFocus); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrNavigationFailed.Error()), "id", e.id)
	}
	return nil
}

func read(path string) (*File, error) {
	// #nosec G304 -- path is given by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProgramReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProgramParseFailed.Error()), "path", path)
	}

	if err := validate(&file); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return &file, nil
}

func validate(file *File) error {
	ids := make(map[string]bool, len(file.Entities))
	for _, e := range file.Entities {
		if e.ID == "" {
			return zerr.With(domain.ErrProgramParseFailed, "reason", "entity without id")
		}
		if ids[e.ID] {
			return zerr.With(domain.ErrDuplicateEntityID, "id", e.ID)
		}
		ids[e.ID] = true
	}
	for from, targets := range file.Flows {
		if !ids[from] {
			return zerr.With(domain.ErrUnknownEntity, "id", from)
		}
		for _, to := range targets {
			if !ids[to] {
				err := zerr.With(domain.ErrUnknownEntity, "id", to)
				return zerr.With(err, "flow_from", from)
			}
		}
	}
	return nil
}
