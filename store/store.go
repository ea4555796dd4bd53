package store

import (
	"context"
	"errors"
	"time"

	"github.com/redsand-dev/real_estate_api/backend/models"
)

// ErrNotFound reports that no document matched the given id.
var ErrNotFound = errors.New("document not found")

// ListOptions carries skip/limit pagination for listing queries.
type ListOptions struct {
	Skip  int64
	Limit int64
}

// PropertyFilter holds the optional listing filters. Nil fields impose no
// constraint; set fields are combined with logical AND.
type PropertyFilter struct {
	PropertyType *models.PropertyType
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
	Area         *string
	Status       *models.PropertyStatus
}

type PropertyStore interface {
	Insert(ctx context.Context, p models.Property) error
	List(ctx context.Context, f PropertyFilter, opts ListOptions) ([]models.Property, error)
	// Featured returns the most recently created available properties,
	// newest first.
	Featured(ctx context.Context, limit int64) ([]models.Property, error)
	GetByID(ctx context.Context, id string) (models.Property, error)
	// Update applies the non-nil fields of u and stamps updated_at.
	Update(ctx context.Context, id string, u models.PropertyUpdate, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, f PropertyFilter) (int64, error)
	DistinctAreas(ctx context.Context) ([]string, error)
}

type InquiryStore interface {
	Insert(ctx context.Context, inq models.ContactInquiry) error
	// List returns inquiries newest first.
	List(ctx context.Context, opts ListOptions) ([]models.ContactInquiry, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
