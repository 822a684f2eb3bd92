package kundali

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Request is the payload accepted by the kundali service.
type Request struct {
	BirthInput
	// ReferenceTime decides which dasha periods are active. When omitted the
	// service uses the start of the current UTC day.
	ReferenceTime *time.Time `json:"referenceTime,omitempty"`
	Vargas        []string   `json:"vargas,omitempty"`
}

// Response is serialized back to API consumers.
type Response struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Cached    bool      `json:"cached"`
	Result    Result    `json:"result"`
}

// VariantInfo describes a supported divisional chart.
type VariantInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Parts int    `json:"parts"`
}

// Config wires runtime knobs for the kundali service.
type Config struct {
	CacheTTL             time.Duration
	ApparentSiderealTime bool
	DefaultVargas        []string
}

// Store caches computed responses by request fingerprint.
type Store interface {
	GetResponse(ctx context.Context, fingerprint string) (Response, bool, error)
	SaveResponse(ctx context.Context, fingerprint string, resp Response, ttl time.Duration) error
}

// Repository archives computed responses by id.
type Repository interface {
	Insert(ctx context.Context, fingerprint string, resp Response) error
	FindByID(ctx context.Context, id uuid.UUID) (Response, bool, error)
}
