package store

import "encoding/json"

// maxRetries bounds the CAS retry loop in Update. Conflicts only occur when
// another writer lands between Load and Replace, so a handful is plenty.
const maxRetries = 8

// Collection is a typed view over one named document in a Store.
// Reads seed the document on first access; writes go through a
// compare-and-swap loop so no concurrent writer is ever lost.
type Collection[T any] struct {
	store Store
	name  string
	seed  func() T
}

func NewCollection[T any](s Store, name string, seed func() T) *Collection[T] {
	return &Collection[T]{store: s, name: name, seed: seed}
}

// All returns the current value, persisting the seed on first access.
func (c *Collection[T]) All() (T, error) {
	v, _, err := c.load()
	return v, err
}

func (c *Collection[T]) load() (T, int64, error) {
	var zero T
	data, version, ok, err := c.store.Load(c.name)
	if err != nil {
		return zero, 0, err
	}
	if !ok {
		seeded := c.seed()
		b, err := json.Marshal(seeded)
		if err != nil {
			return zero, 0, err
		}
		if err := c.store.Replace(c.name, b, 0); err != nil {
			if err != ErrVersionConflict {
				return zero, 0, err
			}
			// Another caller seeded first; fall through to their value.
			return c.load()
		}
		return seeded, 1, nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, 0, err
	}
	return v, version, nil
}

// Update applies fn to the current value and replaces the whole document.
// When fn returns an error nothing is written. Version conflicts are retried
// against a fresh read.
func (c *Collection[T]) Update(fn func(T) (T, error)) (T, error) {
	var zero T
	for i := 0; i < maxRetries; i++ {
		cur, version, err := c.load()
		if err != nil {
			return zero, err
		}
		next, err := fn(cur)
		if err != nil {
			return zero, err
		}
		b, err := json.Marshal(next)
		if err != nil {
			return zero, err
		}
		err = c.store.Replace(c.name, b, version)
		if err == nil {
			return next, nil
		}
		if err != ErrVersionConflict {
			return zero, err
		}
	}
	return zero, ErrVersionConflict
}
