package handlers

import "net/http"

// RootResponse describes the service and its endpoints.
type RootResponse struct {
	Message              string `json:"message"`
	Docs                 string `json:"docs"`
	Redoc                string `json:"redoc"`
	RandomNumberEndpoint string `json:"random_number_endpoint"`
}

// Root responds with the static service description.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Message:              "Welcome to Random Number Generator API",
		Docs:                 "/docs",
		Redoc:                "/redoc",
		RandomNumberEndpoint: "/random",
	})
}
