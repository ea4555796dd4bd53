package models

import (
	"time"

	"github.com/google/uuid"
)

type PropertyType string

const (
	TypeInvestment  PropertyType = "investment"
	TypeResidential PropertyType = "residential"
)

func (t PropertyType) Valid() bool {
	return t == TypeInvestment || t == TypeResidential
}

type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusSold      PropertyStatus = "sold"
	StatusPending   PropertyStatus = "pending"
)

func (s PropertyStatus) Valid() bool {
	return s == StatusAvailable || s == StatusSold || s == StatusPending
}

type Property struct {
	ID           string         `bson:"id" json:"id"`
	Title        string         `bson:"title" json:"title"`
	Description  string         `bson:"description" json:"description"`
	Price        float64        `bson:"price" json:"price"`
	Location     string         `bson:"location" json:"location"`
	Area         string         `bson:"area" json:"area"`
	Bedrooms     int            `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    int            `bson:"bathrooms" json:"bathrooms"`
	Sqft         float64        `bson:"sqft" json:"sqft"`
	PropertyType PropertyType   `bson:"property_type" json:"property_type"`
	Status       PropertyStatus `bson:"status" json:"status"`
	Features     []string       `bson:"features" json:"features"`
	Images       []string       `bson:"images" json:"images"`
	ROI          *float64       `bson:"roi" json:"roi"`
	RentalYield  *float64       `bson:"rental_yield" json:"rental_yield"`
	CreatedAt    time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `bson:"updated_at" json:"updated_at"`
}

// PropertyCreate is the client payload for creating a property. Required
// numeric fields are pointers so that a legitimate zero passes validation.
type PropertyCreate struct {
	Title        string         `json:"title" validate:"required"`
	Description  string         `json:"description" validate:"required"`
	Price        *float64       `json:"price" validate:"required,gte=0"`
	Location     string         `json:"location" validate:"required"`
	Area         string         `json:"area" validate:"required"`
	Bedrooms     *int           `json:"bedrooms" validate:"required,gte=0"`
	Bathrooms    *int           `json:"bathrooms" validate:"required,gte=0"`
	Sqft         *float64       `json:"sqft" validate:"required,gte=0"`
	PropertyType PropertyType   `json:"property_type" validate:"required,oneof=investment residential"`
	Status       PropertyStatus `json:"status" validate:"omitempty,oneof=available sold pending"`
	Features     []string       `json:"features"`
	Images       []string       `json:"images"`
	ROI          *float64       `json:"roi" validate:"omitempty,gte=0"`
	RentalYield  *float64       `json:"rental_yield" validate:"omitempty,gte=0"`
}

// NewProperty builds a persistable Property from a validated create payload,
// generating the id and both timestamps.
func NewProperty(c PropertyCreate, now time.Time) Property {
	status := c.Status
	if status == "" {
		status = StatusAvailable
	}
	features := c.Features
	if features == nil {
		features = []string{}
	}
	images := c.Images
	if images == nil {
		images = []string{}
	}
	return Property{
		ID:           uuid.NewString(),
		Title:        c.Title,
		Description:  c.Description,
		Price:        *c.Price,
		Location:     c.Location,
		Area:         c.Area,
		Bedrooms:     *c.Bedrooms,
		Bathrooms:    *c.Bathrooms,
		Sqft:         *c.Sqft,
		PropertyType: c.PropertyType,
		Status:       status,
		Features:     features,
		Images:       images,
		ROI:          c.ROI,
		RentalYield:  c.RentalYield,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// PropertyUpdate is a sparse update payload: only non-nil fields are applied
// to the stored record.
type PropertyUpdate struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Price        *float64        `json:"price" validate:"omitempty,gte=0"`
	Location     *string         `json:"location"`
	Area         *string         `json:"area"`
	Bedrooms     *int            `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms    *int            `json:"bathrooms" validate:"omitempty,gte=0"`
	Sqft         *float64        `json:"sqft" validate:"omitempty,gte=0"`
	PropertyType *PropertyType   `json:"property_type" validate:"omitempty,oneof=investment residential"`
	Status       *PropertyStatus `json:"status" validate:"omitempty,oneof=available sold pending"`
	Features     []string        `json:"features"`
	Images       []string        `json:"images"`
	ROI          *float64        `json:"roi" validate:"omitempty,gte=0"`
	RentalYield  *float64        `json:"rental_yield" validate:"omitempty,gte=0"`
}
