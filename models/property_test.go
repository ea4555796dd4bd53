package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, TypeInvestment.Valid())
	assert.True(t, TypeResidential.Valid())
	assert.False(t, PropertyType("commercial").Valid())
	assert.False(t, PropertyType("").Valid())

	assert.True(t, StatusAvailable.Valid())
	assert.True(t, StatusSold.Valid())
	assert.True(t, StatusPending.Valid())
	assert.False(t, PropertyStatus("archived").Valid())
}

func TestNewPropertyDefaults(t *testing.T) {
	price := 750000.0
	bedrooms := 2
	bathrooms := 1
	sqft := 980.0
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p := NewProperty(PropertyCreate{
		Title:        "Garden Flat",
		Description:  "Quiet two-bed flat",
		Price:        &price,
		Location:     "Greenwood Lane 4",
		Area:         "Greenwood",
		Bedrooms:     &bedrooms,
		Bathrooms:    &bathrooms,
		Sqft:         &sqft,
		PropertyType: TypeResidential,
	}, now)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, StatusAvailable, p.Status)
	assert.Equal(t, []string{}, p.Features)
	assert.Equal(t, []string{}, p.Images)
	assert.Nil(t, p.ROI)
	assert.Nil(t, p.RentalYield)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
}

func TestNewPropertyKeepsExplicitValues(t *testing.T) {
	price := 2500000.0
	bedrooms := 3
	bathrooms := 3
	sqft := 2100.0
	roi := 8.5
	now := time.Now().UTC()

	p := NewProperty(PropertyCreate{
		Title:        "Marina Penthouse",
		Description:  "Top floor",
		Price:        &price,
		Location:     "Marina Walk",
		Area:         "Dubai Marina",
		Bedrooms:     &bedrooms,
		Bathrooms:    &bathrooms,
		Sqft:         &sqft,
		PropertyType: TypeInvestment,
		Status:       StatusPending,
		Features:     []string{"pool"},
		ROI:          &roi,
	}, now)

	assert.Equal(t, StatusPending, p.Status)
	assert.Equal(t, []string{"pool"}, p.Features)
	assert.Equal(t, &roi, p.ROI)
}

func TestNewPropertyIDsUnique(t *testing.T) {
	price := 1.0
	n := 0
	sqft := 1.0
	now := time.Now().UTC()
	c := PropertyCreate{
		Title: "t", Description: "d", Price: &price, Location: "l", Area: "a",
		Bedrooms: &n, Bathrooms: &n, Sqft: &sqft, PropertyType: TypeResidential,
	}

	a := NewProperty(c, now)
	b := NewProperty(c, now)
	assert.NotEqual(t, a.ID, b.ID)
}
