package controllers

import (
	"log/slog"
	"net/http"

	"github.com/redsand-dev/real_estate_api/backend/models"
	"github.com/redsand-dev/real_estate_api/backend/store"
)

// Stats is the admin dashboard aggregate. The five counts are independent
// queries, so they may reflect slightly different instants under
// concurrent writes.
type Stats struct {
	TotalProperties     int64 `json:"total_properties"`
	AvailableProperties int64 `json:"available_properties"`
	InvestmentCount     int64 `json:"investment_count"`
	ResidentialCount    int64 `json:"residential_count"`
	TotalInquiries      int64 `json:"total_inquiries"`
}

func GetStats(props store.PropertyStore, inqs store.InquiryStore) http.HandlerFunc {
	available := models.StatusAvailable
	investment := models.TypeInvestment
	residential := models.TypeResidential

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		fail := func(err error) {
			slog.Error("failed to compute stats", "error", err)
			respondError(w, http.StatusInternalServerError, "Error computing stats")
		}

		totalProperties, err := props.Count(ctx, store.PropertyFilter{})
		if err != nil {
			fail(err)
			return
		}
		availableProperties, err := props.Count(ctx, store.PropertyFilter{Status: &available})
		if err != nil {
			fail(err)
			return
		}
		investmentCount, err := props.Count(ctx, store.PropertyFilter{PropertyType: &investment})
		if err != nil {
			fail(err)
			return
		}
		residentialCount, err := props.Count(ctx, store.PropertyFilter{PropertyType: &residential})
		if err != nil {
			fail(err)
			return
		}
		totalInquiries, err := inqs.Count(ctx)
		if err != nil {
			fail(err)
			return
		}

		respondJSON(w, http.StatusOK, Stats{
			TotalProperties:     totalProperties,
			AvailableProperties: availableProperties,
			InvestmentCount:     investmentCount,
			ResidentialCount:    residentialCount,
			TotalInquiries:      totalInquiries,
		})
	}
}

func GetAreas(props store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areas, err := props.DistinctAreas(r.Context())
		if err != nil {
			slog.Error("failed to fetch areas", "error", err)
			respondError(w, http.StatusInternalServerError, "Error fetching areas")
			return
		}
		if areas == nil {
			areas = []string{}
		}
		respondJSON(w, http.StatusOK, areas)
	}
}
