package client

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
)

// FileTokenStore keeps credentials as a json file. Writes go to a temporary
// file which is renamed over the old one, so readers never see half a pair.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (f *FileTokenStore) Load() (*Credentials, error) {
	data, err := ioutil.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var c Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode credentials file: %w", err)
	}
	return &c, nil
}

func (f *FileTokenStore) Save(c Credentials) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	file, err := ioutil.TempFile(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary credentials file: %w", err)
	}
	tmp := file.Name()

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("write temporary credentials file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("sync temporary credentials file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temporary credentials file: %w", err)
	}
	if err := os.Chmod(tmp, 0600); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename credentials file: %w", err)
	}
	return nil
}

func (f *FileTokenStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryTokenStore keeps credentials for the lifetime of the process only
type MemoryTokenStore struct {
	sync.Mutex
	c *Credentials
}

func (m *MemoryTokenStore) Load() (*Credentials, error) {
	m.Lock()
	defer m.Unlock()
	if m.c == nil {
		return nil, nil
	}
	c := *m.c
	return &c, nil
}

func (m *MemoryTokenStore) Save(c Credentials) error {
	m.Lock()
	defer m.Unlock()
	m.c = &c
	return nil
}

func (m *MemoryTokenStore) Clear() error {
	m.Lock()
	defer m.Unlock()
	m.c = nil
	return nil
}
