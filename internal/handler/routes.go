package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chasingSublimity/Traveler/spec"
)

// Routes returns the API router. Global middleware (request ID, logging,
// recovery, CORS, body limits) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, messageBody{Message: "Not Found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, messageBody{Message: "Method Not Allowed"})
	})

	// Public.
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)
	r.Post("/users", s.CreateUser)
	r.Post("/login", s.Login)
	r.Post("/logout", s.Logout)

	// Authenticated by session cookie or basic credentials.
	r.Group(func(r chi.Router) {
		r.Use(s.requireUser)

		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/", s.GetUser)
			r.Put("/", s.UpdateUser)
			r.Delete("/", s.DeleteUser)
		})

		r.Get("/trips", s.ListTrips)
		r.Post("/trips", s.CreateTrip)
		r.Route("/trips/{id}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/memories", s.ListTripMemories)
		})

		r.Post("/memories", s.CreateMemory)
		r.Route("/memories/{id}", func(r chi.Router) {
			r.Get("/", s.GetMemory)
			r.Put("/", s.UpdateMemory)
			r.Delete("/", s.DeleteMemory)
		})

		r.Get("/awsUrl", s.GetUploadURL)
	})

	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
