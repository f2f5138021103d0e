package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/catcoat/backend/internal/domain"
	"github.com/catcoat/backend/pkg/metrics"
)

// PostgresRepository implements domain.CatRepository
type PostgresRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Collector
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool, collector *metrics.Collector) *PostgresRepository {
	return &PostgresRepository{pool: pool, metrics: collector}
}

// EnsureSchema creates the cats table if it does not exist yet. The
// created_at column is never exposed; it only fixes list order to
// insertion order.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			city TEXT,
			notes TEXT,
			units TEXT NOT NULL DEFAULT 'metric',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`, domain.CatTable)

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("postgres: failed to ensure schema: %w", err)
	}
	return nil
}

// Create persists a new cat and returns the generated id
func (r *PostgresRepository) Create(ctx context.Context, cat domain.Cat) (uuid.UUID, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, latitude, longitude, city, notes, units)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, domain.CatTable)

	id := uuid.New()
	_, err := r.pool.Exec(ctx, query,
		id, cat.Name, cat.Latitude, cat.Longitude, cat.City, cat.Notes, cat.Units,
	)
	if err != nil {
		r.metrics.RecordStoreError("create")
		return uuid.Nil, fmt.Errorf("postgres: failed to create cat: %w", err)
	}

	return id, nil
}

// List returns every stored cat in insertion order
func (r *PostgresRepository) List(ctx context.Context) ([]domain.Cat, error) {
	query := fmt.Sprintf(`
		SELECT id, name, latitude, longitude, city, notes, units
		FROM %s
		ORDER BY created_at
	`, domain.CatTable)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.metrics.RecordStoreError("list")
		return nil, fmt.Errorf("postgres: failed to query cats: %w", err)
	}
	defer rows.Close()

	var cats []domain.Cat
	for rows.Next() {
		var c domain.Cat
		err := rows.Scan(&c.ID, &c.Name, &c.Latitude, &c.Longitude, &c.City, &c.Notes, &c.Units)
		if err != nil {
			r.metrics.RecordStoreError("list")
			return nil, fmt.Errorf("postgres: failed to scan cat row: %w", err)
		}
		cats = append(cats, c)
	}

	return cats, nil
}

// GetByID returns a single cat or domain.ErrCatNotFound
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Cat, error) {
	query := fmt.Sprintf(`
		SELECT id, name, latitude, longitude, city, notes, units
		FROM %s
		WHERE id = $1
	`, domain.CatTable)

	var c domain.Cat
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Latitude, &c.Longitude, &c.City, &c.Notes, &c.Units)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Cat{}, domain.ErrCatNotFound
		}
		r.metrics.RecordStoreError("get")
		return domain.Cat{}, fmt.Errorf("postgres: failed to get cat: %w", err)
	}

	return c, nil
}

// Delete removes a cat or returns domain.ErrCatNotFound
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, domain.CatTable)

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.metrics.RecordStoreError("delete")
		return fmt.Errorf("postgres: failed to delete cat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCatNotFound
	}

	return nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

// Tables lists public table names, used by the /test probe.
func (r *PostgresRepository) Tables(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan table name: %w", err)
		}
		names = append(names, name)
	}

	return names, nil
}
