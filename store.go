package argmap

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Store is a write-once mapping from string keys to dynamically typed
// values (int64, float64, bool, nil, string, or nested maps/sequences
// loaded from a file). Once a key holds a value it is never replaced
// or removed; every mutation path either populates an absent key or
// leaves the existing value untouched.
type Store struct {
	mutex  sync.RWMutex
	values map[string]any
	logger *slog.Logger
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		values: make(map[string]any),
		logger: slog.Default(),
	}
}

// SetLogger replaces the logger used for merge diagnostics.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.logger = logger
}

// log returns the current logger under the read lock, pairing with the
// write lock SetLogger takes.
func (s *Store) log() *slog.Logger {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.logger
}

// SetDefault stores value under key if the key is absent, then returns
// the value held under key. The first writer always wins; later calls
// for the same key are no-ops that return the existing value.
func (s *Store) SetDefault(key string, value any) any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if existing, ok := s.values[key]; ok {
		return existing
	}
	s.values[key] = value
	return value
}

// SetOnce stores value under key, failing with ErrDuplicateKey if the
// key is already set. Used where a collision signals a caller bug
// rather than a resolvable precedence question.
func (s *Store) SetOnce(key string, value any) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.values[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	s.values[key] = value
	return nil
}

// Get returns the value under key, failing with ErrKeyNotFound if absent.
func (s *Store) Get(key string) (any, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return value, nil
}

// Lookup returns the value under key and whether it is present.
func (s *Store) Lookup(key string) (any, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

// Contains reports whether key is set.
func (s *Store) Contains(key string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, ok := s.values[key]
	return ok
}

// Delete always fails with ErrUnsupportedOp. Removal is unsupported so
// that the saved configuration plus the program's SetDefault call sites
// fully determine every value on a re-run.
func (s *Store) Delete(key string) error {
	return fmt.Errorf("%w: cannot delete %q", ErrUnsupportedOp, key)
}

// Len returns the number of keys set.
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.values)
}

// Keys returns all set keys in sorted order.
func (s *Store) Keys() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the current mapping. Nested values are
// shared with the store; the store itself never mutates them.
func (s *Store) Snapshot() map[string]any {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	snap := make(map[string]any, len(s.values))
	for key, value := range s.values {
		snap[key] = value
	}
	return snap
}
