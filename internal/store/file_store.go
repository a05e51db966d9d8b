package store

import (
	"path/filepath"
	"sync"

	"dogyears/internal/domain"
)

const prefsFilename = "prefs.json"

// FileStore persists preference values as one JSON object on disk.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save writes value under key, keeping the other stored keys intact. A
// preference file that no longer parses is replaced wholesale rather than
// appended to.
func (s *FileStore) Save(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]string)
	if _, err := readJSON(s.path(), &m); err != nil {
		m = map[string]string{}
	}
	m[key] = value
	return writeJSON(s.path(), m, 0o600)
}

// Load reads the value under key. A missing file or missing key is not an
// error; a file that exists but fails to parse is.
func (s *FileStore) Load(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]string)
	found, err := readJSON(s.path(), &m)
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, nil
	}
	v, ok := m[key]
	return v, ok, nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, prefsFilename)
}

// Compile-time assertion that FileStore implements domain.PreferenceStore.
var _ domain.PreferenceStore = (*FileStore)(nil)
