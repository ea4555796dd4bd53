package controllers

import "net/http"

func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "REDSAND Real Estate API"})
	}
}
