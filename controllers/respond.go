package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names by their json tag so validation detail matches the
	// wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError is one entry of the field-level detail returned on 422.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type errorBody struct {
	Detail any `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, errorBody{Detail: detail})
}

func respondFieldErrors(w http.ResponseWriter, fieldErrors []FieldError) {
	respondJSON(w, http.StatusUnprocessableEntity, errorBody{Detail: fieldErrors})
}

// respondValidationError maps a validator error to the 422 detail shape.
func respondValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(w, http.StatusUnprocessableEntity, "Invalid payload")
		return
	}
	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field: fe.Field(),
			Error: "failed on the '" + fe.Tag() + "' rule",
		})
	}
	respondFieldErrors(w, fieldErrors)
}
