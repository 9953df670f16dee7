package storage

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/schollz/termtab/internal/tab"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound is returned by Load when the document does not exist yet.
var ErrNotFound = fmt.Errorf("document not found: %w", fs.ErrNotExist)

// ParseError reports a document that exists but cannot be read back.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type noteData struct {
	String   uint8  `json:"string"`
	Duration string `json:"duration"`
	Fret     uint8  `json:"fret,omitempty"`
	SlideIn  string `json:"slide_in,omitempty"`
	SlideOut string `json:"slide_out,omitempty"`
	Tap      bool   `json:"tap,omitempty"`
	Tie      bool   `json:"tie,omitempty"`
}

type slotData struct {
	Rest  string     `json:"rest,omitempty"`
	Notes []noteData `json:"notes,omitempty"`
}

type measureData struct {
	TimeSignature string     `json:"time_signature"`
	Contents      []slotData `json:"contents"`
}

type instrumentData struct {
	Name   string  `json:"name"`
	Tuning []uint8 `json:"tuning"`
	Frets  uint8   `json:"frets"`
}

type documentData struct {
	Instrument *instrumentData `json:"instrument,omitempty"`
	Measures   []measureData   `json:"measures"`
}

// Load reads a document. A missing file yields ErrNotFound, anything that
// cannot be decoded or violates the model's rules yields a *ParseError.
func Load(path string) (*tab.Tab, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if isGzip(path) {
		raw, err = gunzip(raw)
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}

	var data documentData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	doc, err := decode(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	log.Printf("loaded %s: %d measures", path, doc.Len())
	return doc, nil
}

// fileMode is the permission of saved documents.
const fileMode = 0o644

// Save writes doc to path, replacing any existing file only once the new
// contents are fully on disk.
func Save(path string, doc *tab.Tab) error {
	raw, err := json.MarshalIndent(encode(doc), "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if isGzip(path) {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		if _, err := gz.Write(raw); err != nil {
			return fmt.Errorf("compress %s: %w", path, err)
		}
		if err := gz.Close(); err != nil {
			return fmt.Errorf("compress %s: %w", path, err)
		}
		raw = buf.Bytes()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".termtab-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	log.Printf("saved %s: %d measures", path, doc.Len())
	return nil
}

func isGzip(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

func gunzip(raw []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer gz.Close()
	return io.ReadAll(gz)
}
