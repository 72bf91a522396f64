package memory

import (
	"sync"

	"battlebridge/internal/app/ports"
)

// DefaultObservationCap bounds the in-memory journal. Memory mode is meant
// for development; use postgres to keep a full history.
const DefaultObservationCap = 10000

type Store struct {
	mu             sync.RWMutex
	nextID         int64
	observationCap int
	observations   []ports.ObservationRecord
}

func NewStore() *Store {
	return NewStoreWithCap(DefaultObservationCap)
}

// NewStoreWithCap keeps at most n observations, evicting the oldest appended
// first. n <= 0 means unbounded.
func NewStoreWithCap(n int) *Store {
	return &Store{observationCap: n}
}
