package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Memory is a photo taken somewhere on a trip.
// Location is either the place name the user typed or, when geocoding is
// enabled, the coordinate pair rendered by Coordinates.String.
type Memory struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	ImageURL  string
	Location  string
	Comments  string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemoryPatch is a partial update. Nil fields are left unchanged.
type MemoryPatch struct {
	ImageURL *string
	Location *string
	Comments *string
	Date     *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p MemoryPatch) IsEmpty() bool {
	return p.ImageURL == nil && p.Location == nil && p.Comments == nil && p.Date == nil
}

// Coordinates is a latitude/longitude pair returned by a geocoder.
type Coordinates struct {
	Lat float64
	Lng float64
}

// String renders the pair as a JSON array, e.g. "[33.5778631,-101.8551665]".
func (c Coordinates) String() string {
	return "[" + strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(c.Lng, 'f', -1, 64) + "]"
}
