package history

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const fileExt = ".toml"

// Manager handles save/load of run histories
type Manager struct {
	basePath string
}

// NewManager creates a manager with the given base directory
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path for a run file
func (m *Manager) FilePath(id string) string {
	return filepath.Join(m.basePath, id+fileExt)
}

// Exists checks if a run file exists
func (m *Manager) Exists(id string) bool {
	_, err := os.Stat(m.FilePath(id))
	return err == nil
}

// Save writes a run to disk
func (m *Manager) Save(run *Run) error {
	if err := run.Validate(); err != nil {
		return errors.Wrap(err, "refusing to save invalid run")
	}
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return errors.Wrapf(err, "create %s", m.basePath)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(run); err != nil {
		return errors.Wrap(err, "encode run")
	}

	return errors.Wrapf(os.WriteFile(m.FilePath(run.ID), buf.Bytes(), 0644), "write run %s", run.ID)
}

// Load reads a run from disk and validates it
func (m *Manager) Load(id string) (*Run, error) {
	data, err := os.ReadFile(m.FilePath(id))
	if err != nil {
		return nil, errors.Wrapf(err, "read run %s", id)
	}

	var run Run
	if _, err := toml.Decode(string(data), &run); err != nil {
		return nil, errors.Wrapf(err, "decode run %s", id)
	}
	if err := run.Validate(); err != nil {
		return nil, errors.Wrapf(err, "run %s", id)
	}
	return &run, nil
}

// List returns the IDs of all saved runs, sorted
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "list %s", m.basePath)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(ids)
	return ids, nil
}
