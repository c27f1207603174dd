package designation

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository stores designations in-memory, keyed by normalized path.
type MemoryRepository struct {
	mu          sync.RWMutex
	records     map[string]Designation
	broadcaster *changeBroadcaster
}

// NewMemoryRepository constructs an in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records:     make(map[string]Designation),
		broadcaster: newChangeBroadcaster(),
	}
}

var _ Repository = (*MemoryRepository)(nil)

// Get returns the designation for path or ErrDesignationNotFound.
func (r *MemoryRepository) Get(_ context.Context, path string) (Designation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[NormalizePath(path)]
	if !ok {
		return Designation{}, ErrDesignationNotFound
	}
	return record, nil
}

// List returns all designations sorted by path.
func (r *MemoryRepository) List(context.Context) ([]Designation, error) {
	r.mu.RLock()
	out := make([]Designation, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out, nil
}

// Upsert stores a designation, emitting a change event.
func (r *MemoryRepository) Upsert(_ context.Context, record Designation) (Designation, error) {
	prepared, err := prepare(record)
	if err != nil {
		return Designation{}, err
	}

	r.mu.Lock()
	previous, existed := r.records[prepared.Path]
	if existed {
		prepared.ID = previous.ID
		prepared.CreatedAt = previous.CreatedAt
	}
	r.records[prepared.Path] = prepared
	r.mu.Unlock()

	if existed && previous == prepared {
		return prepared, nil
	}
	changeType := ChangeUpdated
	if !existed {
		changeType = ChangeCreated
	}
	r.broadcaster.Broadcast(newChangeEvent(changeType, prepared))
	return prepared, nil
}

// Delete removes the designation for path and emits a change event.
func (r *MemoryRepository) Delete(_ context.Context, path string) error {
	key := NormalizePath(path)

	r.mu.Lock()
	record, ok := r.records[key]
	if !ok {
		r.mu.Unlock()
		return ErrDesignationNotFound
	}
	delete(r.records, key)
	r.mu.Unlock()

	r.broadcaster.Broadcast(newChangeEvent(ChangeDeleted, record))
	return nil
}

// Subscribe delivers change events until the context is cancelled.
func (r *MemoryRepository) Subscribe(ctx context.Context) (<-chan ChangeEvent, error) {
	return r.broadcaster.Subscribe(ctx)
}
