package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schollz/termtab/internal/input"
	"github.com/schollz/termtab/internal/model"
	"github.com/schollz/termtab/internal/views"
)

// EditorModel wraps the model and implements the tea.Model interface.
// bubbletea runs it as a single loop: draw, block for one message, update.
type EditorModel struct {
	model *model.Model
}

func NewEditorModel(m *model.Model) *EditorModel {
	return &EditorModel{model: m}
}

func (em *EditorModel) Init() tea.Cmd {
	return nil
}

func (em *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Applied here and picked up by the next View.
		em.model.SetTermSize(msg.Width, msg.Height)
		return em, nil

	case tea.KeyMsg:
		// bubbletea only delivers key presses, never releases or repeats.
		return em, input.HandleKeyInput(em.model, msg)
	}
	return em, nil
}

func (em *EditorModel) View() string {
	return views.Render(em.model)
}

type runner interface {
	Run() (tea.Model, error)
}

// App owns one editing session.
type App struct {
	model      *model.Model
	options    []tea.ProgramOption
	restore    func()
	newProgram func(tea.Model, ...tea.ProgramOption) runner
}

type Option func(*App)

// WithProgramOptions adds bubbletea options, e.g. to swap input and output.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(a *App) {
		a.options = append(a.options, opts...)
	}
}

// WithRestore sets a hook that runs exactly once when Run returns,
// whether the session ended normally or with an error.
func WithRestore(fn func()) Option {
	return func(a *App) {
		a.restore = fn
	}
}

func New(m *model.Model, opts ...Option) *App {
	a := &App{
		model:   m,
		restore: func() {},
		newProgram: func(tm tea.Model, opts ...tea.ProgramOption) runner {
			return tea.NewProgram(tm, opts...)
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run drives the event loop until the model is done or ctx is cancelled.
// Cancellation and interruption are a normal shutdown and return nil.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		a.restore()
		log.Printf("session ended, status %s", a.model.Status)
	}()

	// Signals are delivered through ctx only.
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx), tea.WithoutSignalHandler()}, a.options...)
	p := a.newProgram(NewEditorModel(a.model), opts...)

	_, err := p.Run()
	if err != nil {
		switch {
		case errors.Is(err, tea.ErrInterrupted):
			log.Printf("shutting down: %v", err)
			return nil
		case ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled):
			log.Printf("shutting down: %v", ctx.Err())
			return nil
		}
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
