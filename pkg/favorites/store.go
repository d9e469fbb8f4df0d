// Package favorites keeps the user's favorited property ids across sessions.
// The set is local to the client and has no relationship to the server: a
// favorite may point at a listing that no longer exists, it simply drops out
// of any fetched batch.
package favorites

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const storageFile = "property-favorites.json"

// DefaultPath places the favorites file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "property-listings", storageFile), nil
}

// Store is an idempotent set of property ids, rewritten to disk on every
// change. Load and persistence are best-effort: a failed read or write is
// logged and the in-memory set stays authoritative for the session.
type Store struct {
	mu   sync.Mutex
	path string
	ids  map[int]struct{}
}

// Open restores any previously saved set from path. It never fails; an
// unreadable file just means starting empty.
func Open(path string) *Store {
	s := &Store{path: path, ids: make(map[int]struct{})}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Could not load favorites from %s: %v", path, err)
		}
		return s
	}

	var saved []int
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Could not parse favorites file %s: %v", path, err)
		return s
	}
	for _, id := range saved {
		s.ids[id] = struct{}{}
	}
	return s
}

func (s *Store) Add(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = struct{}{}
	s.persist()
}

func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, id)
	s.persist()
}

// Toggle removes the id if present, adds it otherwise, and reports whether
// the id is favorited afterwards.
func (s *Store) Toggle(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		s.persist()
		return false
	}
	s.ids[id] = struct{}{}
	s.persist()
	return true
}

func (s *Store) Contains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IDs returns the favorited ids in ascending order.
func (s *Store) IDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// persist writes the whole set. Caller must hold the lock.
func (s *Store) persist() {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		log.Printf("Could not encode favorites: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		log.Printf("Could not create favorites directory: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("Could not save favorites to %s: %v", s.path, err)
	}
}
