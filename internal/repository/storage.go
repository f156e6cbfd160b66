package repository

import (
	"sort"
	"sync"
)

// Entity is anything a Storage can hold: it carries an integer id that the
// storage assigns on save.
type Entity interface {
	GetID() int64
	SetID(id int64)
}

// Storage is a generic in-memory keyed collection with an auto-incrementing
// id sequence. Ids are never reused, even after deletion. All operations are
// safe for concurrent use; the compound helpers (SaveIf, Mutate) run their
// predicate and the dependent write in a single critical section, so
// check-then-insert races cannot admit two conflicting writes.
//
// Stored entities are treated as immutable: Mutate replaces the stored value
// instead of editing it in place, so a pointer handed out by Get is always a
// consistent snapshot.
type Storage[T Entity] struct {
	mu     sync.RWMutex
	data   map[int64]T
	lastID int64
}

func NewStorage[T Entity]() *Storage[T] {
	return &Storage[T]{data: make(map[int64]T)}
}

// Get returns the stored entity and whether it exists.
func (s *Storage[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[id]
	return e, ok
}

// All returns every stored entity ordered by id, which matches insertion
// order since the sequence is strictly increasing.
func (s *Storage[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.allLocked()
}

// Save assigns a fresh id to the entity, ignoring any id the caller set,
// and inserts it.
func (s *Storage[T]) Save(e T) T {
	saved, _ := s.SaveIf(e, nil)
	return saved
}

// SaveIf runs cond over the current contents and inserts the entity with a
// fresh id only if cond allows it. The check and the insert happen under one
// lock.
func (s *Storage[T]) SaveIf(e T, cond func(existing []T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cond != nil {
		if err := cond(s.allLocked()); err != nil {
			var zero T
			return zero, err
		}
	}

	s.lastID++
	e.SetID(s.lastID)
	s.data[s.lastID] = e

	return e, nil
}

// Mutate atomically replaces the entity stored under id with the value fn
// returns. fn receives the current entity and a snapshot of all entities
// (including the current one) for cross-record validation; returning an
// error aborts the write. The second result is false when id is absent.
func (s *Storage[T]) Mutate(id int64, fn func(current T, all []T) (T, error)) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	current, ok := s.data[id]
	if !ok {
		return zero, false, nil
	}

	next, err := fn(current, s.allLocked())
	if err != nil {
		return zero, true, err
	}

	s.data[id] = next

	return next, true, nil
}

// Delete removes the entity if present and reports whether a removal
// occurred. The id is not returned to the sequence.
func (s *Storage[T]) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return false
	}
	delete(s.data, id)

	return true
}

// Put inserts an entity keeping its original id. Used only for seed-data
// preload; the sequence is advanced past the id so later saves never
// collide with preloaded entities.
func (s *Storage[T]) Put(e T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[e.GetID()] = e
	if e.GetID() > s.lastID {
		s.lastID = e.GetID()
	}
}

// Len returns the number of stored entities.
func (s *Storage[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}

func (s *Storage[T]) allLocked() []T {
	all := make([]T, 0, len(s.data))
	for _, e := range s.data {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].GetID() < all[j].GetID() })

	return all
}

// paginate slices items into 1-based pages: page n of size k covers
// [(n-1)*k, n*k). Pages past the end, a non-positive page number or a
// non-positive page size all yield an empty result.
func paginate[T any](items []T, pageSize, pageNum int) []T {
	if pageSize <= 0 || pageNum <= 0 {
		return nil
	}

	skip := pageSize * (pageNum - 1)
	if skip >= len(items) {
		return nil
	}

	end := skip + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[skip:end]
}
