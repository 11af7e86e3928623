// Package domain contains the core data types for the Traveler application.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, auth, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a journey from Origin to Destination owned by a single user.
// Memories belong to a trip; deleting the trip deletes them.
type Trip struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Origin      string
	Destination string
	BeginDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTrip carries the input of a trip creation. The owner is named by user
// name and resolved to a user ID by the service before the insert.
type NewTrip struct {
	UserName    string
	Origin      string
	Destination string
	BeginDate   time.Time
	EndDate     time.Time
}

// TripPatch is a partial update. Nil fields are left unchanged.
type TripPatch struct {
	Origin      *string
	Destination *string
	BeginDate   *time.Time
	EndDate     *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p TripPatch) IsEmpty() bool {
	return p.Origin == nil && p.Destination == nil && p.BeginDate == nil && p.EndDate == nil
}

// Apply returns a copy of t with every non-nil patch field applied.
func (p TripPatch) Apply(t Trip) Trip {
	if p.Origin != nil {
		t.Origin = *p.Origin
	}
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.BeginDate != nil {
		t.BeginDate = *p.BeginDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	return t
}
