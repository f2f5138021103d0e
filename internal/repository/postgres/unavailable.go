package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/catcoat/backend/internal/domain"
)

// UnavailableRepository is wired when no database can be reached. Every
// operation reports domain.ErrStoreUnavailable so requests fail with a
// fixed message instead of crashing the process.
type UnavailableRepository struct{}

// NewUnavailableRepository creates the stub repository
func NewUnavailableRepository() *UnavailableRepository {
	return &UnavailableRepository{}
}

func (r *UnavailableRepository) Create(ctx context.Context, cat domain.Cat) (uuid.UUID, error) {
	return uuid.Nil, domain.ErrStoreUnavailable
}

func (r *UnavailableRepository) List(ctx context.Context) ([]domain.Cat, error) {
	return nil, domain.ErrStoreUnavailable
}

func (r *UnavailableRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Cat, error) {
	return domain.Cat{}, domain.ErrStoreUnavailable
}

func (r *UnavailableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return domain.ErrStoreUnavailable
}

func (r *UnavailableRepository) Health(ctx context.Context) error {
	return domain.ErrStoreUnavailable
}

func (r *UnavailableRepository) Tables(ctx context.Context) ([]string, error) {
	return nil, domain.ErrStoreUnavailable
}
