package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/redsand-dev/real_estate_api/backend/models"
	"github.com/redsand-dev/real_estate_api/backend/store"
)

const (
	defaultListLimit     = 50
	maxListLimit         = 100
	defaultFeaturedLimit = 6
)

func CreateProperty(props store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.PropertyCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "Invalid request body")
			return
		}
		if err := validate.Struct(payload); err != nil {
			respondValidationError(w, err)
			return
		}

		property := models.NewProperty(payload, time.Now().UTC())
		if err := props.Insert(r.Context(), property); err != nil {
			slog.Error("failed to create property", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create property")
			return
		}

		respondJSON(w, http.StatusOK, property)
	}
}

func GetProperties(props store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter, fieldErrors := parsePropertyFilter(query)
		opts, optErrors := parseListOptions(query)
		fieldErrors = append(fieldErrors, optErrors...)
		if len(fieldErrors) > 0 {
			respondFieldErrors(w, fieldErrors)
			return
		}

		properties, err := props.List(r.Context(), filter, opts)
		if err != nil {
			slog.Error("failed to list properties", "error", err)
			respondError(w, http.StatusInternalServerError, "Error fetching properties")
			return
		}
		if properties == nil {
			properties = []models.Property{}
		}
		respondJSON(w, http.StatusOK, properties)
	}
}

func GetFeaturedProperties(props store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := int64(defaultFeaturedLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed < 0 {
				respondFieldErrors(w, []FieldError{{Field: "limit", Error: "must be a non-negative integer"}})
				return
			}
			limit = parsed
		}

		properties, err := props.Featured(r.Context(), limit)
		if err != nil {
			slog.Error("failed to list featured properties", "error", err)
			respondError(w, http.StatusInternalServerError, "Error fetching properties")
			return
		}
		if properties == nil {
			properties = []models.Property{}
		}
		respondJSON(w, http.StatusOK, properties)
	}
}

func GetPropertyByID(props store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		property, err := props.GetByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Property not found")
			return
		}
		if err != nil {
			slog.Error("failed to fetch property", "id", id, "error", err)
			respondError(w, http.StatusInternalServerError, "Error fetching property")
			return
		}
		respondJSON(w, http.StatusOK, property)
	}
}

func UpdateProperty(props store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var payload models.PropertyUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "Invalid request body")
			return
		}
		if err := validate.Struct(payload); err != nil {
			respondValidationError(w, err)
			return
		}

		if _, err := props.GetByID(r.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Property not found")
				return
			}
			slog.Error("failed to fetch property", "id", id, "error", err)
			respondError(w, http.StatusInternalServerError, "Error fetching property")
			return
		}

		if err := props.Update(r.Context(), id, payload, time.Now().UTC()); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Property not found")
				return
			}
			slog.Error("failed to update property", "id", id, "error", err)
			respondError(w, http.StatusInternalServerError, "Update failed")
			return
		}

		updated, err := props.GetByID(r.Context(), id)
		if err != nil {
			slog.Error("failed to fetch property after update", "id", id, "error", err)
			respondError(w, http.StatusInternalServerError, "Error fetching property")
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

func DeleteProperty(props store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		err := props.Delete(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Property not found")
			return
		}
		if err != nil {
			slog.Error("failed to delete property", "id", id, "error", err)
			respondError(w, http.StatusInternalServerError, "Delete failed")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "Property deleted successfully"})
	}
}

// parsePropertyFilter reads the six optional listing filters, collecting a
// field error for every malformed value instead of stopping at the first.
func parsePropertyFilter(query url.Values) (store.PropertyFilter, []FieldError) {
	var filter store.PropertyFilter
	var fieldErrors []FieldError

	if raw := query.Get("property_type"); raw != "" {
		t := models.PropertyType(raw)
		if !t.Valid() {
			fieldErrors = append(fieldErrors, FieldError{Field: "property_type", Error: "must be one of: investment, residential"})
		} else {
			filter.PropertyType = &t
		}
	}
	if raw := query.Get("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fieldErrors = append(fieldErrors, FieldError{Field: "min_price", Error: "must be a number"})
		} else {
			filter.MinPrice = &v
		}
	}
	if raw := query.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fieldErrors = append(fieldErrors, FieldError{Field: "max_price", Error: "must be a number"})
		} else {
			filter.MaxPrice = &v
		}
	}
	if raw := query.Get("bedrooms"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrors = append(fieldErrors, FieldError{Field: "bedrooms", Error: "must be an integer"})
		} else {
			filter.Bedrooms = &v
		}
	}
	if raw := query.Get("area"); raw != "" {
		filter.Area = &raw
	}
	if raw := query.Get("status"); raw != "" {
		s := models.PropertyStatus(raw)
		if !s.Valid() {
			fieldErrors = append(fieldErrors, FieldError{Field: "status", Error: "must be one of: available, sold, pending"})
		} else {
			filter.Status = &s
		}
	}
	return filter, fieldErrors
}

// parseListOptions enforces the shared pagination contract: limit defaults
// to 50 and is rejected above 100, skip defaults to 0.
func parseListOptions(query url.Values) (store.ListOptions, []FieldError) {
	opts := store.ListOptions{Limit: defaultListLimit}
	var fieldErrors []FieldError

	if raw := query.Get("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		switch {
		case err != nil || v < 0:
			fieldErrors = append(fieldErrors, FieldError{Field: "limit", Error: "must be a non-negative integer"})
		case v > maxListLimit:
			fieldErrors = append(fieldErrors, FieldError{Field: "limit", Error: "must not exceed 100"})
		default:
			opts.Limit = v
		}
	}
	if raw := query.Get("skip"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			fieldErrors = append(fieldErrors, FieldError{Field: "skip", Error: "must be a non-negative integer"})
		} else {
			opts.Skip = v
		}
	}
	return opts, fieldErrors
}
