package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schollz/termtab/internal/model"
	"github.com/schollz/termtab/internal/storage"
	"github.com/schollz/termtab/internal/tab"
	"github.com/schollz/termtab/internal/types"
)

type fakeRunner struct {
	err error
}

func (f fakeRunner) Run() (tea.Model, error) { return nil, f.err }

func TestEditorModelUpdate(t *testing.T) {
	m := model.NewModel("", nil)
	em := NewEditorModel(m)
	assert.Nil(t, em.Init())

	_, cmd := em.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.TermWidth)
	assert.Equal(t, 40, m.TermHeight)

	em.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	assert.Equal(t, types.InsertMode, m.Mode)

	assert.NotEmpty(t, em.View())
}

func TestRunRestoresOnce(t *testing.T) {
	t.Run("on error", func(t *testing.T) {
		restored := 0
		a := New(model.NewModel("", nil), WithRestore(func() { restored++ }))
		a.newProgram = func(tea.Model, ...tea.ProgramOption) runner {
			return fakeRunner{err: errors.New("read failed")}
		}

		err := a.Run(context.Background())
		assert.ErrorContains(t, err, "read failed")
		assert.Equal(t, 1, restored)
	})

	t.Run("on success", func(t *testing.T) {
		restored := 0
		a := New(model.NewModel("", nil), WithRestore(func() { restored++ }))
		a.newProgram = func(tea.Model, ...tea.ProgramOption) runner {
			return fakeRunner{}
		}

		assert.NoError(t, a.Run(context.Background()))
		assert.Equal(t, 1, restored)
	})

	t.Run("interrupt is a clean shutdown", func(t *testing.T) {
		restored := 0
		var got []tea.ProgramOption
		a := New(model.NewModel("", nil), WithRestore(func() { restored++ }))
		a.newProgram = func(_ tea.Model, opts ...tea.ProgramOption) runner {
			got = opts
			return fakeRunner{err: tea.ErrInterrupted}
		}

		assert.NoError(t, a.Run(context.Background()))
		assert.Equal(t, 1, restored)
		// alt screen, context, no signal handler
		assert.Len(t, got, 3)
	})

	t.Run("cancelled context is a clean shutdown", func(t *testing.T) {
		restored := 0
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		a := New(model.NewModel("", nil),
			WithRestore(func() { restored++ }),
			WithProgramOptions(
				tea.WithInput(strings.NewReader("")),
				tea.WithOutput(io.Discard),
				tea.WithoutSignalHandler(),
			),
		)
		assert.NoError(t, a.Run(ctx))
		assert.Equal(t, 1, restored)
	})
}

func TestQuitEndToEnd(t *testing.T) {
	path := t.TempDir() + "/song.json"
	doc := tab.New()
	doc.AppendMeasure(tab.NewMeasure(tab.CommonTime))
	require.NoError(t, storage.Save(path, doc))

	loaded, err := storage.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, "4/4", loaded.Measures()[0].TimeSignature().String())

	m := model.NewModel(path, loaded)
	restored := 0
	a := New(m,
		WithRestore(func() { restored++ }),
		WithProgramOptions(
			tea.WithInput(strings.NewReader(":q\r")),
			tea.WithOutput(io.Discard),
			tea.WithoutSignalHandler(),
		),
	)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, types.Done, m.Status)
	assert.Equal(t, types.NormalMode, m.Mode)
	assert.True(t, m.Command.Empty())
	assert.Equal(t, 1, restored)
}
