package surface

import (
	"slices"
	"sync"
)

// memo remembers the result of the most recent call, keyed by the values of
// the call's arguments.
//
// Stored values must not be modified once they've been put.
type memo[T any] struct {
	mu   sync.Mutex
	keys [][]float64
	val  T
	ok   bool

	// Only read by tests.
	hits   int
	misses int
}

func (m *memo[T]) get(keys ...[]float64) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ok && equalKeys(m.keys, keys) {
		m.hits++
		return m.val, true
	}
	m.misses++
	return *new(T), false
}

func (m *memo[T]) put(val T, keys ...[]float64) {
	stored := make([][]float64, len(keys))
	for i, k := range keys {
		stored[i] = slices.Clone(k)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = stored
	m.val = val
	m.ok = true
}

func equalKeys(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (m *memo[T]) stats() (hits, misses int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}
