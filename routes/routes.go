package routes

import (
	"github.com/gorilla/mux"

	"github.com/redsand-dev/real_estate_api/backend/controllers"
	"github.com/redsand-dev/real_estate_api/backend/store"
)

func Routes(router *mux.Router, props store.PropertyStore, inqs store.InquiryStore) {
	// Redirect /api to /api/ instead of 404ing on the missing slash.
	router.StrictSlash(true)
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/", controllers.Root()).Methods("GET")

	// Property routes. /properties/featured must be registered before the
	// {id} route so "featured" is not taken as an id.
	api.HandleFunc("/properties", controllers.CreateProperty(props)).Methods("POST")
	api.HandleFunc("/properties", controllers.GetProperties(props)).Methods("GET")
	api.HandleFunc("/properties/featured", controllers.GetFeaturedProperties(props)).Methods("GET")
	api.HandleFunc("/properties/{id}", controllers.GetPropertyByID(props)).Methods("GET")
	api.HandleFunc("/properties/{id}", controllers.UpdateProperty(props)).Methods("PUT")
	api.HandleFunc("/properties/{id}", controllers.DeleteProperty(props)).Methods("DELETE")

	// Inquiry routes
	api.HandleFunc("/inquiries", controllers.CreateInquiry(inqs)).Methods("POST")
	api.HandleFunc("/inquiries", controllers.GetInquiries(inqs)).Methods("GET")
	api.HandleFunc("/inquiries/{id}", controllers.DeleteInquiry(inqs)).Methods("DELETE")

	// Dashboard routes
	api.HandleFunc("/stats", controllers.GetStats(props, inqs)).Methods("GET")
	api.HandleFunc("/areas", controllers.GetAreas(props)).Methods("GET")
}
