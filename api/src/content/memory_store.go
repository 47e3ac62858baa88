package content

import (
	"context"
	"sync"

	reasoncodes "ecertify/pkg/reason_codes"
)

type MemoryStore struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{files: make(map[string][]byte)}
}

func (s *MemoryStore) Put(_ context.Context, data []byte) (string, error) {
	cid := ComputeContentId(data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[cid] = append([]byte(nil), data...)
	return cid, nil
}

func (s *MemoryStore) Get(_ context.Context, contentId string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.files[contentId]
	if !ok {
		return nil, reasoncodes.New(reasoncodes.ErrNotFound, "content %s not found", contentId)
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) Close() error {
	return nil
}
