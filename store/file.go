package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"TaskFilterService/models"
)

// DefaultFileMode leaves the preference file writable by every user.
const DefaultFileMode os.FileMode = 0o666

// FileStore keeps the preference document in a single JSON file.
// Writes go through a temp file and a rename, so readers never see a
// partially written document.
type FileStore struct {
	base
	path string
	mode os.FileMode
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string, opts ...Option) *FileStore {
	return &FileStore{base: newBase("file", opts), path: path, mode: DefaultFileMode}
}

// Path returns the location of the preference file.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensure(); err != nil {
		return s.writeFailed("initialize preferences", err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context) models.PreferenceDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensure(); err != nil {
		return s.fallback(err)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return s.fallback(err)
	}
	var doc models.PreferenceDocument
	if err := models.Decode(data, &doc); err != nil {
		return s.fallback(err)
	}
	s.log.WithField("preference operation", "load preferences").Debugf("Loaded preferences: %s", bytes.TrimSpace(data))
	return doc.Normalize()
}

func (s *FileStore) Save(ctx context.Context, entry models.Preference) error {
	doc := models.PreferenceDocument{SavedPreferences: []models.Preference{s.stamp(entry)}}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(doc); err != nil {
		return s.writeFailed("save preferences", err)
	}
	s.wrote("save preferences", doc)
	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	doc := models.EmptyDocument()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(doc); err != nil {
		return s.writeFailed("clear preferences", err)
	}
	s.wrote("clear preferences", doc)
	return nil
}

// ensure creates the file holding the empty document if it is missing.
func (s *FileStore) ensure() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return s.write(models.EmptyDocument())
}

func (s *FileStore) write(doc models.PreferenceDocument) error {
	data, err := json.MarshalIndent(doc.Normalize(), "", "    ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, append(data, '\n'), s.mode)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	// Chmod is not subject to the umask.
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
