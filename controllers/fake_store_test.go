package controllers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/redsand-dev/real_estate_api/backend/models"
	"github.com/redsand-dev/real_estate_api/backend/store"
)

// fakePropertyStore keeps properties in insertion order in memory and
// mirrors the Mongo store's filter and merge semantics.
type fakePropertyStore struct {
	mu   sync.Mutex
	docs []models.Property
}

func (f *fakePropertyStore) Insert(_ context.Context, p models.Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs = append(f.docs, p)
	return nil
}

func matches(p models.Property, filter store.PropertyFilter) bool {
	if filter.PropertyType != nil && p.PropertyType != *filter.PropertyType {
		return false
	}
	if filter.MinPrice != nil && p.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
		return false
	}
	if filter.Bedrooms != nil && p.Bedrooms != *filter.Bedrooms {
		return false
	}
	if filter.Area != nil && p.Area != *filter.Area {
		return false
	}
	if filter.Status != nil && p.Status != *filter.Status {
		return false
	}
	return true
}

func paginate[T any](items []T, opts store.ListOptions) []T {
	if opts.Skip >= int64(len(items)) {
		return []T{}
	}
	items = items[opts.Skip:]
	if opts.Limit < int64(len(items)) {
		items = items[:opts.Limit]
	}
	return items
}

func (f *fakePropertyStore) List(_ context.Context, filter store.PropertyFilter, opts store.ListOptions) ([]models.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []models.Property{}
	for _, p := range f.docs {
		if matches(p, filter) {
			matched = append(matched, p)
		}
	}
	return paginate(matched, opts), nil
}

func (f *fakePropertyStore) Featured(_ context.Context, limit int64) ([]models.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []models.Property{}
	for _, p := range f.docs {
		if p.Status == models.StatusAvailable {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakePropertyStore) GetByID(_ context.Context, id string) (models.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.docs {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Property{}, store.ErrNotFound
}

func (f *fakePropertyStore) Update(_ context.Context, id string, u models.PropertyUpdate, updatedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.docs {
		if f.docs[i].ID != id {
			continue
		}
		p := &f.docs[i]
		if u.Title != nil {
			p.Title = *u.Title
		}
		if u.Description != nil {
			p.Description = *u.Description
		}
		if u.Price != nil {
			p.Price = *u.Price
		}
		if u.Location != nil {
			p.Location = *u.Location
		}
		if u.Area != nil {
			p.Area = *u.Area
		}
		if u.Bedrooms != nil {
			p.Bedrooms = *u.Bedrooms
		}
		if u.Bathrooms != nil {
			p.Bathrooms = *u.Bathrooms
		}
		if u.Sqft != nil {
			p.Sqft = *u.Sqft
		}
		if u.PropertyType != nil {
			p.PropertyType = *u.PropertyType
		}
		if u.Status != nil {
			p.Status = *u.Status
		}
		if u.Features != nil {
			p.Features = u.Features
		}
		if u.Images != nil {
			p.Images = u.Images
		}
		if u.ROI != nil {
			p.ROI = u.ROI
		}
		if u.RentalYield != nil {
			p.RentalYield = u.RentalYield
		}
		p.UpdatedAt = updatedAt
		return nil
	}
	return store.ErrNotFound
}

func (f *fakePropertyStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.docs {
		if p.ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakePropertyStore) Count(_ context.Context, filter store.PropertyFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, p := range f.docs {
		if matches(p, filter) {
			n++
		}
	}
	return n, nil
}

func (f *fakePropertyStore) DistinctAreas(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	areas := []string{}
	for _, p := range f.docs {
		if !seen[p.Area] {
			seen[p.Area] = true
			areas = append(areas, p.Area)
		}
	}
	return areas, nil
}

type fakeInquiryStore struct {
	mu   sync.Mutex
	docs []models.ContactInquiry
}

func (f *fakeInquiryStore) Insert(_ context.Context, inq models.ContactInquiry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs = append(f.docs, inq)
	return nil
}

func (f *fakeInquiryStore) List(_ context.Context, opts store.ListOptions) ([]models.ContactInquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sorted := append([]models.ContactInquiry{}, f.docs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return paginate(sorted, opts), nil
}

func (f *fakeInquiryStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, inq := range f.docs {
		if inq.ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeInquiryStore) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.docs)), nil
}
