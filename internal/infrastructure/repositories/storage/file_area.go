package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// FileArea is a key-value storage area persisted as a single YAML document.
// Reads load the file each time so that concurrent processes see each
// other's writes; writes replace the file atomically.
type FileArea struct {
	path string
	mu   sync.Mutex
}

func NewFileArea(path string) *FileArea {
	return &FileArea{path: path}
}

// Get decodes the value stored under key into out. found is false when the
// key or the file is missing.
func (it *FileArea) Get(key string, out any) (bool, error) {
	it.mu.Lock()
	defer it.mu.Unlock()

	values, err := it.load()
	if err != nil {
		return false, err
	}

	node, ok := values[key]
	if !ok {
		return false, nil
	}
	if err = node.Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode %q from %s: %w", key, it.path, err)
	}
	return true, nil
}

// Set stores value under key, keeping every other key intact.
func (it *FileArea) Set(key string, value any) error {
	it.mu.Lock()
	defer it.mu.Unlock()

	values, err := it.load()
	if err != nil {
		return err
	}

	var node yaml.Node
	if err = node.Encode(value); err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	values[key] = node

	return it.save(values)
}

func (it *FileArea) load() (map[string]yaml.Node, error) {
	values := make(map[string]yaml.Node)

	data, err := os.ReadFile(it.path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", it.path, err)
	}

	if err = yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", it.path, err)
	}
	if values == nil {
		values = make(map[string]yaml.Node)
	}
	return values, nil
}

func (it *FileArea) save(values map[string]yaml.Node) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", it.path, err)
	}

	dir := filepath.Dir(it.path)
	if err = os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(it.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to chmod %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	return os.Rename(tmp.Name(), it.path)
}
