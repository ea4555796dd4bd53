package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/redsand-dev/real_estate_api/backend/models"
)

// buildFilter translates a PropertyFilter into a Mongo filter document.
// min_price and max_price merge into a single inclusive range on price.
func buildFilter(f PropertyFilter) bson.M {
	query := bson.M{}
	if f.PropertyType != nil {
		query["property_type"] = *f.PropertyType
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["price"] = price
	}
	if f.Bedrooms != nil {
		query["bedrooms"] = *f.Bedrooms
	}
	if f.Area != nil {
		query["area"] = *f.Area
	}
	if f.Status != nil {
		query["status"] = *f.Status
	}
	return query
}

// buildUpdate produces the $set document for a partial update: every non-nil
// payload field plus the refreshed updated_at stamp.
func buildUpdate(u models.PropertyUpdate, updatedAt time.Time) bson.M {
	set := bson.M{"updated_at": updatedAt}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Location != nil {
		set["location"] = *u.Location
	}
	if u.Area != nil {
		set["area"] = *u.Area
	}
	if u.Bedrooms != nil {
		set["bedrooms"] = *u.Bedrooms
	}
	if u.Bathrooms != nil {
		set["bathrooms"] = *u.Bathrooms
	}
	if u.Sqft != nil {
		set["sqft"] = *u.Sqft
	}
	if u.PropertyType != nil {
		set["property_type"] = *u.PropertyType
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.Features != nil {
		set["features"] = u.Features
	}
	if u.Images != nil {
		set["images"] = u.Images
	}
	if u.ROI != nil {
		set["roi"] = *u.ROI
	}
	if u.RentalYield != nil {
		set["rental_yield"] = *u.RentalYield
	}
	return set
}
