package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/redsand-dev/real_estate_api/backend/models"
	"github.com/redsand-dev/real_estate_api/backend/store"
)

func CreateInquiry(inqs store.InquiryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.ContactInquiryCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "Invalid request body")
			return
		}
		if err := validate.Struct(payload); err != nil {
			respondValidationError(w, err)
			return
		}

		inquiry := models.NewContactInquiry(payload, time.Now().UTC())
		if err := inqs.Insert(r.Context(), inquiry); err != nil {
			slog.Error("failed to create inquiry", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create inquiry")
			return
		}

		respondJSON(w, http.StatusOK, inquiry)
	}
}

func GetInquiries(inqs store.InquiryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, fieldErrors := parseListOptions(r.URL.Query())
		if len(fieldErrors) > 0 {
			respondFieldErrors(w, fieldErrors)
			return
		}

		inquiries, err := inqs.List(r.Context(), opts)
		if err != nil {
			slog.Error("failed to list inquiries", "error", err)
			respondError(w, http.StatusInternalServerError, "Error fetching inquiries")
			return
		}
		if inquiries == nil {
			inquiries = []models.ContactInquiry{}
		}
		respondJSON(w, http.StatusOK, inquiries)
	}
}

func DeleteInquiry(inqs store.InquiryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		err := inqs.Delete(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Inquiry not found")
			return
		}
		if err != nil {
			slog.Error("failed to delete inquiry", "id", id, "error", err)
			respondError(w, http.StatusInternalServerError, "Delete failed")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "Inquiry deleted successfully"})
	}
}
