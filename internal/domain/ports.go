package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrViewNotFound  = errors.New("page view not found")
	ErrUnknownField  = errors.New("unknown booking field")
	ErrInvalidGuests = errors.New("guests must be an integer")
)

type CatalogRepository interface {
	// Write paths
	UpsertRoom(ctx context.Context, position int, r RoomOffering) error
	UpsertAmenity(ctx context.Context, position int, a AmenityEntry) error
	UpsertFeature(ctx context.Context, position int, f FeatureHighlight) error

	// Read path
	LoadCatalog(ctx context.Context) (Catalog, error)
}

// ViewState is the persisted form of one page view.
type ViewState struct {
	ID           string           `json:"id"`
	Mounted      bool             `json:"mounted"`
	CurrentSlide int              `json:"currentSlide"`
	Booking      BookingFormState `json:"booking"`
}

type ViewStore interface {
	Load(ctx context.Context, id string) (ViewState, error) // ErrViewNotFound when absent
	Save(ctx context.Context, st ViewState, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
