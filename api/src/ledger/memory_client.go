package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// MemoryClient keeps anchored records in process. References are derived from the record
// content, so anchoring the same record twice yields the same reference.
type MemoryClient struct {
	mu      sync.Mutex
	records map[string]Record
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{records: make(map[string]Record)}
}

func (m *MemoryClient) Anchor(_ context.Context, record Record) (string, error) {
	data, err := record.Serialize()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	ref := "mem-" + hex.EncodeToString(sum[:])

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[ref] = record
	return ref, nil
}

func (m *MemoryClient) Lookup(ref string) (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[ref]
	return r, ok
}

func (m *MemoryClient) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
