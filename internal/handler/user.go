package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

// userResponse is the public representation of a user. It never carries
// the password or its hash.
type userResponse struct {
	ID        openapi_types.UUID `json:"id"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	UserName  string             `json:"userName"`
}

type createUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
	Password  string `json:"password"`
}

type updateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	UserName  *string `json:"userName"`
	Password  *string `json:"password"`
}

// CreateUser handles POST /users.
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body createUserRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.users.Create(r.Context(), domain.NewUser{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		UserName:  body.UserName,
		Password:  body.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, userToResponse(created))
}

// GetUser handles GET /users/{id}.
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	user, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userToResponse(user))
}

// UpdateUser handles PUT /users/{id}. Omitted fields are left unchanged.
func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var body updateUserRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	patch := domain.UserPatch{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		UserName:  body.UserName,
		Password:  body.Password,
	}
	if _, err := s.users.Update(r.Context(), id, patch); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser handles DELETE /users/{id}. The user's trips, memories and
// sessions go with it.
func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.users.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func userToResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, UserName: u.UserName}
}
