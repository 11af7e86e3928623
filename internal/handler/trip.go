package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/chasingSublimity/Traveler/internal/auth"
	"github.com/chasingSublimity/Traveler/internal/domain"
)

type tripResponse struct {
	ID          openapi_types.UUID `json:"id"`
	Origin      string             `json:"origin"`
	Destination string             `json:"destination"`
	BeginDate   openapi_types.Date `json:"beginDate"`
	EndDate     openapi_types.Date `json:"endDate"`
	UserID      openapi_types.UUID `json:"userId"`
}

type pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type listTripsResponse struct {
	Trips      []tripResponse `json:"trips"`
	Pagination pagination     `json:"pagination"`
}

type listMemoriesResponse struct {
	Memories []memoryResponse `json:"memories"`
}

type createTripRequest struct {
	UserName    string             `json:"userName"`
	Origin      string             `json:"origin"`
	Destination string             `json:"destination"`
	BeginDate   openapi_types.Date `json:"beginDate"`
	EndDate     openapi_types.Date `json:"endDate"`
}

type updateTripRequest struct {
	Origin      *string             `json:"origin"`
	Destination *string             `json:"destination"`
	BeginDate   *openapi_types.Date `json:"beginDate"`
	EndDate     *openapi_types.Date `json:"endDate"`
}

// CreateTrip handles POST /trips. The owner is the userName in the body,
// or the authenticated user when it is omitted.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	in := domain.NewTrip{
		UserName:    body.UserName,
		Origin:      body.Origin,
		Destination: body.Destination,
		BeginDate:   body.BeginDate.Time,
		EndDate:     body.EndDate.Time,
	}
	if in.UserName == "" {
		if user, ok := auth.UserFrom(r.Context()); ok {
			in.UserName = user.UserName
		}
	}

	created, err := s.trips.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if err := queryParam(r, "page", false, &page); err != nil {
		writeError(w, r, err)
		return
	}
	if err := queryParam(r, "limit", false, &limit); err != nil {
		writeError(w, r, err)
		return
	}

	params := domain.NewPaginationParams(page, limit)
	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, listTripsResponse{
		Trips: data,
		Pagination: pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: params.TotalPages(total),
		},
	})
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// ListTripMemories handles GET /trips/{id}/memories.
func (s *Server) ListTripMemories(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	memories, err := s.trips.ListMemories(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	data := make([]memoryResponse, len(memories))
	for i, m := range memories {
		data[i] = memoryToResponse(m)
	}
	writeJSON(w, http.StatusOK, listMemoriesResponse{Memories: data})
}

// UpdateTrip handles PUT /trips/{id}. Omitted fields are left unchanged.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var body updateTripRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	patch := domain.TripPatch{
		Origin:      body.Origin,
		Destination: body.Destination,
		BeginDate:   dateOrNil(body.BeginDate),
		EndDate:     dateOrNil(body.EndDate),
	}
	if _, err := s.trips.Update(r.Context(), id, patch); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTrip handles DELETE /trips/{id}. The trip's memories go with it.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// tripToResponse converts a domain.Trip into its public representation.
func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Origin:      t.Origin,
		Destination: t.Destination,
		BeginDate:   openapi_types.Date{Time: t.BeginDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		UserID:      t.UserID,
	}
}
