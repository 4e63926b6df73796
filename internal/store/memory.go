package store

import "sync"

// MemoryStore is the in-process Store used by tests and ephemeral runs.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]memDoc
}

type memDoc struct {
	data    []byte
	version int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: map[string]memDoc{}}
}

func (s *MemoryStore) Load(name string) ([]byte, int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[name]
	if !ok {
		return nil, 0, false, nil
	}
	cp := make([]byte, len(d.data))
	copy(cp, d.data)
	return cp, d.version, true, nil
}

func (s *MemoryStore) Replace(name string, data []byte, version int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[name]
	if !ok {
		if version != 0 {
			return ErrVersionConflict
		}
		s.docs[name] = memDoc{data: append([]byte(nil), data...), version: 1}
		return nil
	}
	if d.version != version {
		return ErrVersionConflict
	}
	s.docs[name] = memDoc{data: append([]byte(nil), data...), version: version + 1}
	return nil
}
