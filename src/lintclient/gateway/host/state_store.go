package host

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/uber/lint-client/src/lintclient/internal/fs"
	"gopkg.in/yaml.v3"
)

const _stateFileName = "state.yaml"

type fileStateStore struct {
	fs   fs.LintFS
	path string

	mu    sync.Mutex
	flags map[string]bool
}

// NewFileStateStore creates a StateStore persisted as YAML in dir. A missing or unreadable file starts empty.
func NewFileStateStore(lintFS fs.LintFS, dir string) StateStore {
	s := &fileStateStore{
		fs:    lintFS,
		path:  filepath.Join(dir, _stateFileName),
		flags: make(map[string]bool),
	}
	if data, err := lintFS.ReadFile(s.path); err == nil {
		_ = yaml.Unmarshal(data, &s.flags)
	}
	return s
}

func (s *fileStateStore) GetBool(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags[key]
}

func (s *fileStateStore) SetBool(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flags[key] = value
	data, err := yaml.Marshal(s.flags)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	return s.fs.WriteFileAtomic(s.path, data)
}
