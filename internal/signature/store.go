// Package signature indexes the directory of signature images used in
// rendered reports. Lookup is by exact, case-sensitive person name; a
// missing asset is never an error.
package signature

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Store maps person names to signature image paths. The name is the file
// base name without extension; when the same name appears with several
// extensions the first in directory order wins.
type Store struct {
	byName map[string]string
}

// Load scans dir for image files. An empty dir configures an empty store,
// so every lookup misses and rendering proceeds without signatures.
func Load(dir string) (*Store, error) {
	s := &Store{byName: make(map[string]string)}
	if dir == "" {
		return s, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read signature dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !imageExts[ext] {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if _, exists := s.byName[name]; !exists {
			s.byName[name] = filepath.Join(dir, e.Name())
		}
	}
	return s, nil
}

// Lookup returns the asset path for an exact name match.
func (s *Store) Lookup(name string) (string, bool) {
	path, ok := s.byName[name]
	return path, ok
}

// Len reports how many signature assets are indexed.
func (s *Store) Len() int {
	return len(s.byName)
}
