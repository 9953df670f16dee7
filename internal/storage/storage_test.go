package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schollz/termtab/internal/tab"
)

func sampleTab(t *testing.T) *tab.Tab {
	t.Helper()
	q, err := tab.NewDuration(1, 4)
	require.NoError(t, err)
	waltz, err := tab.NewTimeSignature(3, 4)
	require.NoError(t, err)

	doc := tab.New()
	m1 := tab.NewMeasure(tab.CommonTime)
	m1.Append(tab.NewChord(
		tab.NewNote(0, q).Fret(3),
		tab.NewNote(1, q).Fret(2).SlideIn(tab.Up).Tie(true),
	))
	m1.Append(tab.NewRestValue(tab.NewRest(q)))
	doc.AppendMeasure(m1)

	m2 := tab.NewMeasure(waltz)
	m2.Append(tab.NewChord(tab.NewNote(5, q).Fret(12).SlideOut(tab.Down).Tap(true)))
	doc.AppendMeasure(m2)
	return doc
}

func TestSave(t *testing.T) {
	t.Run("successful save", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "songs", "riff.json")

		require.NoError(t, Save(path, sampleTab(t)))

		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.True(t, len(data) > 0)

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file is cleaned up")
	})

	t.Run("saved file is world readable", func(t *testing.T) {
		for _, name := range []string{"riff.json", "riff.json.gz"} {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, sampleTab(t)))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o644), info.Mode().Perm(), name)
		}
	})

	t.Run("save to invalid path", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		err := Save(filepath.Join(blocker, "riff.json"), tab.New())
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("load what was saved", func(t *testing.T) {
		for _, name := range []string{"riff.json", "riff.json.gz"} {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, sampleTab(t)))

			doc, err := Load(path)
			require.NoError(t, err, name)
			require.Equal(t, 2, doc.Len())

			measures := doc.Measures()
			assert.Equal(t, "4/4", measures[0].TimeSignature().String())
			assert.Equal(t, "3/4", measures[1].TimeSignature().String())

			slots := measures[0].Contents()
			require.Len(t, slots, 2)
			assert.Equal(t, tab.ChordKind, slots[0].Kind())
			assert.Equal(t, tab.RestKind, slots[1].Kind())

			notes := slots[0].Notes()
			require.Len(t, notes, 2)
			assert.Equal(t, uint8(3), notes[0].FretNumber())
			dir, ok := notes[1].SlideInDirection()
			assert.True(t, ok)
			assert.Equal(t, tab.Up, dir)
			assert.True(t, notes[1].IsTied())

			last := measures[1].Contents()[0].Notes()[0]
			assert.True(t, last.IsTapped())
			dir, ok = last.SlideOutDirection()
			assert.True(t, ok)
			assert.Equal(t, tab.Down, dir)
		}
	})

	t.Run("load nonexistent file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("minimal document defaults to guitar", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "min.json")
		raw := `{"measures":[{"time_signature":"4/4","contents":[]}]}`
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

		doc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 1, doc.Len())
		assert.Equal(t, tab.Guitar.Name, doc.Instrument().Name)
	})

	t.Run("parse errors", func(t *testing.T) {
		testCases := map[string]string{
			"not json":            `{{{`,
			"bad time signature":  `{"measures":[{"time_signature":"4/3","contents":[]}]}`,
			"zero duration":       `{"measures":[{"time_signature":"4/4","contents":[{"rest":"0/4"}]}]}`,
			"rest and notes":      `{"measures":[{"time_signature":"4/4","contents":[{"rest":"1/4","notes":[{"string":0,"duration":"1/4"}]}]}]}`,
			"empty slot":          `{"measures":[{"time_signature":"4/4","contents":[{}]}]}`,
			"string out of range": `{"measures":[{"time_signature":"4/4","contents":[{"notes":[{"string":6,"duration":"1/4"}]}]}]}`,
			"fret out of range":   `{"measures":[{"time_signature":"4/4","contents":[{"notes":[{"string":0,"fret":30,"duration":"1/4"}]}]}]}`,
			"bad slide":           `{"measures":[{"time_signature":"4/4","contents":[{"notes":[{"string":0,"duration":"1/4","slide_in":"sideways"}]}]}]}`,
			"no strings":          `{"instrument":{"name":"x","tuning":[],"frets":12},"measures":[]}`,
			"tuning past midi":    `{"instrument":{"name":"x","tuning":[250],"frets":10},"measures":[]}`,
			"frets past midi":     `{"instrument":{"name":"x","tuning":[40,120],"frets":24},"measures":[]}`,
		}
		for name, raw := range testCases {
			t.Run(name, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "bad.json")
				require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

				_, err := Load(path)
				var perr *ParseError
				require.True(t, errors.As(err, &perr), "got %v", err)
				assert.Equal(t, path, perr.Path)
			})
		}
	})

	t.Run("range errors are inspectable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		raw := `{"measures":[{"time_signature":"4/4","contents":[{"notes":[{"string":9,"duration":"1/4"}]}]}]}`
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

		_, err := Load(path)
		assert.ErrorIs(t, err, tab.ErrStringOutOfRange)

		raw = `{"instrument":{"name":"x","tuning":[250],"frets":10},"measures":[]}`
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
		_, err = Load(path)
		assert.ErrorIs(t, err, tab.ErrPitchOutOfRange)
	})

	t.Run("corrupt gzip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json.gz")
		require.NoError(t, os.WriteFile(path, []byte("plain"), 0o644))

		_, err := Load(path)
		var perr *ParseError
		assert.ErrorAs(t, err, &perr)
	})
}

func BenchmarkSave(b *testing.B) {
	path := filepath.Join(b.TempDir(), "bench.json")
	doc := tab.New()
	for i := 0; i < 64; i++ {
		doc.AppendMeasure(tab.NewMeasure(tab.CommonTime))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Save(path, doc); err != nil {
			b.Fatal(err)
		}
	}
}
