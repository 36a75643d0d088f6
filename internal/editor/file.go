package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/codebrowser/internal/log"
)

// Open creates an editor over the file at opts.Path. A missing file opens an
// empty buffer that is created on the first save.
func Open(opts Options) (Model, error) {
	if opts.Path == "" {
		return New("", opts), nil
	}

	data, err := os.ReadFile(opts.Path)
	if errors.Is(err, fs.ErrNotExist) {
		m := New("", opts)
		m.status = "new file"
		return m, nil
	}
	if err != nil {
		return Model{}, fmt.Errorf("opening %s: %w", opts.Path, err)
	}

	m := New(string(data), opts)
	log.Info(log.CatEditor, "opened file", "path", opts.Path, "lines", m.doc.LineCount(), "language", m.doc.Language())
	return m, nil
}

func (m Model) save() (Model, tea.Cmd) {
	if m.path == "" {
		m.status = "scratch buffer has no file"
		return m, nil
	}

	text := m.doc.Text()
	if err := writeFile(m.path, []byte(text)); err != nil {
		log.ErrorErr(log.CatEditor, "save failed", err, "path", m.path)
		m.status = err.Error()
		return m, nil
	}
	m.saved = text
	m.status = "saved"
	log.Info(log.CatEditor, "saved file", "path", m.path)

	path := m.path
	return m, func() tea.Msg { return SavedMsg{Path: path} }
}

// reload replaces the buffer with the file's content unless the buffer has
// edits the file does not.
func (m Model) reload() Model {
	data, err := os.ReadFile(m.path)
	if err != nil {
		log.ErrorErr(log.CatEditor, "reload failed", err, "path", m.path)
		m.status = "reload failed: " + err.Error()
		return m
	}
	text := string(data)
	if text == m.doc.Text() {
		m.saved = text
		return m
	}
	if m.Modified() {
		log.Warn(log.CatEditor, "file changed on disk with unsaved edits", "path", m.path)
		m.status = "file changed on disk; unsaved edits kept"
		return m
	}

	m.doc.SetText(text)
	m.saved = m.doc.Text()
	m.setSelection(m.sel)
	m.status = "reloaded"
	log.Info(log.CatEditor, "reloaded file", "path", m.path, "lines", m.doc.LineCount())
	return m
}

// writeFile replaces path atomically, keeping the existing file's mode.
func writeFile(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Chmod(mode); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
