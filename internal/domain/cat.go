package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CatTable is the storage table backing Cat. Declared here so the mapping
// between the record type and its table is explicit rather than derived
// from the type name.
const CatTable = "cats"

// Units accepted in cat records. Stored per cat but the recommendation
// math always runs in Celsius/km-h; see DESIGN.md.
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// Cat represents a stored location: a named point with coordinates for
// which weather and coat recommendations are computed.
type Cat struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	City      *string   `json:"city"`
	Notes     *string   `json:"notes"`
	Units     string    `json:"units"`
}

// Summary returns the public identity block used in advice payloads.
func (c Cat) Summary() CatSummary {
	return CatSummary{
		ID:    c.ID,
		Name:  c.Name,
		City:  c.City,
		Notes: c.Notes,
	}
}

// Identity returns the minimal identity block used in dashboard error
// entries: id, name and city only.
func (c Cat) Identity() CatSummary {
	return CatSummary{
		ID:   c.ID,
		Name: c.Name,
		City: c.City,
	}
}

// CatSummary is the cat identity block embedded in advice payloads.
type CatSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	City  *string   `json:"city"`
	Notes *string   `json:"notes,omitempty"`
}

// CreateCatRequest is the POST /api/cats payload. Latitude and longitude
// are pointers so that an absent field can be told apart from 0.
type CreateCatRequest struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	City      *string  `json:"city"`
	Notes     *string  `json:"notes"`
	Units     string   `json:"units"`
}

// Validate checks the request against the schema: name, latitude and
// longitude are required, units must be "metric" or "imperial" when set.
func (r *CreateCatRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if r.Latitude == nil {
		return fmt.Errorf("latitude is required")
	}
	if r.Longitude == nil {
		return fmt.Errorf("longitude is required")
	}
	if r.Units != "" && r.Units != UnitsMetric && r.Units != UnitsImperial {
		return fmt.Errorf("units must be %q or %q", UnitsMetric, UnitsImperial)
	}
	return nil
}

// Cat builds the record to store, applying the metric default. The id is
// assigned by the repository on creation.
func (r *CreateCatRequest) Cat() Cat {
	units := r.Units
	if units == "" {
		units = UnitsMetric
	}
	return Cat{
		Name:      strings.TrimSpace(r.Name),
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
		City:      r.City,
		Notes:     r.Notes,
		Units:     units,
	}
}
