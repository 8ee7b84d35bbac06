package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/zerr"
)

// Program runs a Model as a full-screen bubbletea program.
type Program struct {
	model *Model
	opts  []tea.ProgramOption
}

// NewProgram wraps model. opts are passed to bubbletea, mostly so tests can
// replace its input and output.
func NewProgram(model *Model, opts ...tea.ProgramOption) *Program {
	return &Program{model: model, opts: opts}
}

// Model returns the wrapped model.
func (p *Program) Model() *Model {
	return p.model
}

// Run blocks until the user quits or ctx is cancelled.
func (p *Program) Run(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, p.opts...)
	prog := tea.NewProgram(p.model, opts...)

	_, err := prog.Run()
	p.model.stop()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return zerr.Wrap(err, domain.ErrViewFailed.Error())
	}
	return nil
}
