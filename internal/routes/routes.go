package routes

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"smartcity/internal/controller"
)

// SetupRouter defines all API routes.
func SetupRouter(advisory *controller.AdvisoryController, sensors *controller.SensorController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/prompt", advisory.HandlePrompt).Methods("POST")
	router.HandleFunc("/api/review", advisory.HandleReview).Methods("POST")
	router.HandleFunc("/api/reviews", advisory.HandleReviews).Methods("GET")

	router.HandleFunc("/api/sensors", sensors.HandleListSensors).Methods("GET")
	router.HandleFunc("/api/sensors", sensors.HandleAddSensors).Methods("POST")
	router.HandleFunc("/api/neighborhoods", sensors.HandleListNeighborhoods).Methods("GET")

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}).Methods("GET")

	return router
}
