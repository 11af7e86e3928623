package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/chasingSublimity/Traveler/internal/domain"
	"github.com/chasingSublimity/Traveler/internal/repo"
	"github.com/chasingSublimity/Traveler/testutil"
)

// repos bundles every repo over a single rolled-back transaction so a test
// can build a user → trip → memory chain and observe cascades.
type repos struct {
	users    repo.UserRepo
	trips    repo.TripRepo
	memories repo.MemoryRepo
	sessions repo.SessionRepo
}

func newTestRepos(t *testing.T) repos {
	t.Helper()
	tx := testutil.NewTx(t)
	return repos{
		users:    repo.NewUserRepo(tx),
		trips:    repo.NewTripRepo(tx),
		memories: repo.NewMemoryRepo(tx),
		sessions: repo.NewSessionRepo(tx),
	}
}

// missingID is a UUID that is never inserted by any test.
var missingID = uuid.UUID{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
	0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef}

func userFixture() domain.User {
	return domain.User{
		FirstName:    "Blake",
		LastName:     "Sager",
		UserName:     "user-" + uuid.NewString()[:8],
		PasswordHash: "$2a$08$not-a-real-hash-but-long-enough-for-the-column",
	}
}

func mustCreateUser(t *testing.T, r repos) domain.User {
	t.Helper()
	u, err := r.users.Create(context.Background(), userFixture())
	require.NoError(t, err, "create user")
	return u
}

func tripFixture(userID uuid.UUID) domain.Trip {
	return domain.Trip{
		UserID:      userID,
		Origin:      "Austin, TX",
		Destination: "Lubbock, TX",
		BeginDate:   time.Date(2013, 4, 8, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2013, 4, 12, 0, 0, 0, 0, time.UTC),
	}
}

func mustCreateTrip(t *testing.T, r repos, userID uuid.UUID) domain.Trip {
	t.Helper()
	trip, err := r.trips.Create(context.Background(), tripFixture(userID))
	require.NoError(t, err, "create trip")
	return trip
}

func memoryFixture(tripID uuid.UUID) domain.Memory {
	return domain.Memory{
		TripID:   tripID,
		ImageURL: "http://placekitten.com/200/300",
		Location: "Lubbock, TX",
		Comments: "test",
		Date:     time.Date(2013, 4, 10, 0, 0, 0, 0, time.UTC),
	}
}

func mustCreateMemory(t *testing.T, r repos, tripID uuid.UUID) domain.Memory {
	t.Helper()
	m, err := r.memories.Create(context.Background(), memoryFixture(tripID))
	require.NoError(t, err, "create memory")
	return m
}

func ptr[T any](v T) *T { return &v }
