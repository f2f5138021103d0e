package postgres

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/catcoat/backend/internal/domain"
)

// MemoryRepository implements domain.CatRepository in process memory.
// Used in demo mode and by tests. Insertion order is preserved so List
// behaves like the real store.
type MemoryRepository struct {
	mu    sync.Mutex
	cats  []domain.Cat
	index map[uuid.UUID]int
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		index: make(map[uuid.UUID]int),
	}
}

// Create stores a new cat and returns the generated id
func (r *MemoryRepository) Create(ctx context.Context, cat domain.Cat) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat.ID = uuid.New()
	r.index[cat.ID] = len(r.cats)
	r.cats = append(r.cats, cat)
	return cat.ID, nil
}

// List returns every stored cat in insertion order
func (r *MemoryRepository) List(ctx context.Context) ([]domain.Cat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Cat, len(r.cats))
	copy(out, r.cats)
	return out, nil
}

// GetByID returns a single cat or domain.ErrCatNotFound
func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Cat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return domain.Cat{}, domain.ErrCatNotFound
	}
	return r.cats[i], nil
}

// Delete removes a cat or returns domain.ErrCatNotFound
func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return domain.ErrCatNotFound
	}

	r.cats = append(r.cats[:i], r.cats[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.cats); j++ {
		r.index[r.cats[j].ID] = j
	}
	return nil
}

// Health always returns nil in memory mode
func (r *MemoryRepository) Health(ctx context.Context) error {
	return nil
}

// Tables reports the single logical table backing the store.
func (r *MemoryRepository) Tables(ctx context.Context) ([]string, error) {
	return []string{domain.CatTable}, nil
}
