package handler

import (
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

type memoryResponse struct {
	ID       openapi_types.UUID `json:"id"`
	ImageURL string             `json:"imgUrl"`
	Location string             `json:"location"`
	Comments string             `json:"comments"`
	Date     openapi_types.Date `json:"date"`
	TripID   openapi_types.UUID `json:"tripId"`
}

type createMemoryRequest struct {
	ImageURL string             `json:"imgUrl"`
	Location string             `json:"location"`
	Comments string             `json:"comments"`
	Date     openapi_types.Date `json:"date"`
	TripID   openapi_types.UUID `json:"tripId"`
}

type updateMemoryRequest struct {
	ImageURL *string             `json:"imgUrl"`
	Location *string             `json:"location"`
	Comments *string             `json:"comments"`
	Date     *openapi_types.Date `json:"date"`
}

// CreateMemory handles POST /memories.
func (s *Server) CreateMemory(w http.ResponseWriter, r *http.Request) {
	var body createMemoryRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.memories.Create(r.Context(), domain.Memory{
		TripID:   body.TripID,
		ImageURL: body.ImageURL,
		Location: body.Location,
		Comments: body.Comments,
		Date:     body.Date.Time,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, memoryToResponse(created))
}

// GetMemory handles GET /memories/{id}.
func (s *Server) GetMemory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	memory, err := s.memories.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, memoryToResponse(memory))
}

// UpdateMemory handles PUT /memories/{id}. Omitted fields are left unchanged.
func (s *Server) UpdateMemory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var body updateMemoryRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	patch := domain.MemoryPatch{
		ImageURL: body.ImageURL,
		Location: body.Location,
		Comments: body.Comments,
		Date:     dateOrNil(body.Date),
	}
	if _, err := s.memories.Update(r.Context(), id, patch); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteMemory handles DELETE /memories/{id}.
func (s *Server) DeleteMemory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.memories.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func memoryToResponse(m domain.Memory) memoryResponse {
	return memoryResponse{
		ID:       m.ID,
		ImageURL: m.ImageURL,
		Location: m.Location,
		Comments: m.Comments,
		Date:     openapi_types.Date{Time: m.Date},
		TripID:   m.TripID,
	}
}

// dateOrNil unwraps an optional request date into a patch field.
func dateOrNil(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
