package chartrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/yanqian/kundali/internal/domain/kundali"
)

// MemoryRepository is an in-memory chart archive used for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]kundali.Response
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[uuid.UUID]kundali.Response),
	}
}

// Insert implements kundali.Repository.
func (r *MemoryRepository) Insert(_ context.Context, _ string, resp kundali.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[resp.ID]; exists {
		return nil
	}
	r.records[resp.ID] = resp
	return nil
}

// FindByID implements kundali.Repository.
func (r *MemoryRepository) FindByID(_ context.Context, id uuid.UUID) (kundali.Response, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	resp, ok := r.records[id]
	return resp, ok, nil
}

var _ kundali.Repository = (*MemoryRepository)(nil)
