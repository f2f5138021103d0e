package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors shared across the store implementations. Handlers map
// them to HTTP statuses with errors.Is.
var (
	// ErrCatNotFound means the id was well-formed but no record matched.
	ErrCatNotFound = errors.New("cat not found")

	// ErrStoreUnavailable means the backing store cannot be reached at
	// all (no connection string, failed pool). Checked before every
	// store operation rather than crashing the process.
	ErrStoreUnavailable = errors.New("database not available")
)

// CatAdvice is the full payload for a single location: its identity, the
// raw reading and the day/night recommendation pair.
type CatAdvice struct {
	Cat             CatSummary         `json:"cat"`
	Weather         WeatherReading     `json:"weather"`
	Recommendations RecommendationPair `json:"recommendations"`
}

// DashboardItem is one per-location entry in the all-cats view. Either the
// weather/recommendations block is populated, or Error carries a short
// description and the entry degrades to identity only.
type DashboardItem struct {
	Cat             CatSummary          `json:"cat"`
	Weather         *WeatherReading     `json:"weather,omitempty"`
	Recommendations *RecommendationPair `json:"recommendations,omitempty"`
	Error           string              `json:"error,omitempty"`
}

// CatRepository defines the interface for cat persistence.
// This follows the Dependency Inversion Principle - domain defines the interface
type CatRepository interface {
	// Create persists a new cat and returns the id assigned by the store.
	Create(ctx context.Context, cat Cat) (uuid.UUID, error)

	// List returns every stored cat in insertion order.
	List(ctx context.Context) ([]Cat, error)

	// GetByID returns a single cat or ErrCatNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (Cat, error)

	// Delete removes a cat or returns ErrCatNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// Health checks database connectivity
	Health(ctx context.Context) error

	// Tables lists the storage's table names, used by the health probe.
	Tables(ctx context.Context) ([]string, error)
}
