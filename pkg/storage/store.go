package storage

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Store is the object-storage boundary: put bytes under a key, get back a
// public URL.
type Store interface {
	Put(key string, data []byte, mimetype string) (string, error)
}

// FSStore keeps objects on local disk under root and serves them below
// baseURL via the static route.
type FSStore struct {
	root    string
	baseURL string
}

func NewFS(root, baseURL string) *FSStore {
	return &FSStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *FSStore) Put(key string, data []byte, _ string) (string, error) {
	// Rooting the key before Clean keeps ".." segments from escaping root.
	clean := path.Clean("/" + key)
	full := filepath.Join(s.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return s.baseURL + clean, nil
}
