package roster

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/activities/internal/domain"
)

func TestSeedCatalog(t *testing.T) {
	store := New(false)
	activities := store.List(context.Background())

	require.Len(t, activities, 3)

	chess, ok := activities["Chess Club"]
	require.True(t, ok)
	require.Equal(t, "Learn strategies and compete in chess tournaments", chess.Description)
	require.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	require.Equal(t, 12, chess.MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)

	require.Contains(t, activities, "Programming Class")
	require.Contains(t, activities, "Gym Class")
}

func TestListReturnsIdenticalSnapshots(t *testing.T) {
	store := New(false)
	ctx := context.Background()

	first := store.List(ctx)
	second := store.List(ctx)
	require.Equal(t, first, second)
}

func TestListSnapshotIsolation(t *testing.T) {
	store := New(false)
	ctx := context.Background()

	snapshot := store.List(ctx)
	snapshot["Chess Club"].Participants[0] = "tampered@mergington.edu"
	delete(snapshot, "Gym Class")

	fresh := store.List(ctx)
	require.Equal(t, "michael@mergington.edu", fresh["Chess Club"].Participants[0])
	require.Contains(t, fresh, "Gym Class")
}

func TestSignupAppendsInOrder(t *testing.T) {
	store := New(false)
	ctx := context.Background()

	require.NoError(t, store.Signup(ctx, "Chess Club", "new@x.edu"))

	participants := store.List(ctx)["Chess Club"].Participants
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu", "new@x.edu"}, participants)
}

func TestSignupDuplicateRejected(t *testing.T) {
	store := New(false)
	ctx := context.Background()

	err := store.Signup(ctx, "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadySignedUp)

	participants := store.List(ctx)["Chess Club"].Participants
	count := 0
	for _, p := range participants {
		if p == "michael@mergington.edu" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestSignupUnknownActivity(t *testing.T) {
	store := New(false)
	ctx := context.Background()

	before := store.List(ctx)
	err := store.Signup(ctx, "Nonexistent Activity", "a@x.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
	require.Equal(t, before, store.List(ctx))
}

func TestSignupIsCaseSensitive(t *testing.T) {
	store := New(false)
	ctx := context.Background()

	require.ErrorIs(t, store.Signup(ctx, "chess club", "a@x.edu"), domain.ErrActivityNotFound)
	require.ErrorIs(t, store.Signup(ctx, "CHESS CLUB", "a@x.edu"), domain.ErrActivityNotFound)
	require.NoError(t, store.Signup(ctx, "Chess Club", "a@x.edu"))
}

func TestSignupDoesNotTouchOtherActivities(t *testing.T) {
	store := New(false)
	ctx := context.Background()

	gymBefore := store.List(ctx)["Gym Class"].Participants
	require.NoError(t, store.Signup(ctx, "Chess Club", "new@x.edu"))
	require.Equal(t, gymBefore, store.List(ctx)["Gym Class"].Participants)
}

func TestSameEmailAcrossActivities(t *testing.T) {
	store := New(false)
	ctx := context.Background()

	email := "multisport@mergington.edu"
	require.NoError(t, store.Signup(ctx, "Chess Club", email))
	require.NoError(t, store.Signup(ctx, "Programming Class", email))

	activities := store.List(ctx)
	require.Contains(t, activities["Chess Club"].Participants, email)
	require.Contains(t, activities["Programming Class"].Participants, email)
}

func TestUnregisterRemovesPreservingOrder(t *testing.T) {
	store := NewFromActivities(false, []domain.Activity{{
		Name:            "Art Club",
		MaxParticipants: 10,
		Participants:    []string{"a@x.edu", "b@x.edu", "c@x.edu"},
	}})
	ctx := context.Background()

	require.NoError(t, store.Unregister(ctx, "Art Club", "b@x.edu"))
	require.Equal(t, []string{"a@x.edu", "c@x.edu"}, store.List(ctx)["Art Club"].Participants)
}

func TestUnregisterNotRegistered(t *testing.T) {
	store := New(false)
	ctx := context.Background()

	err := store.Unregister(ctx, "Chess Club", "stranger@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	store := New(false)
	ctx := context.Background()

	err := store.Unregister(ctx, "Nonexistent Activity", "a@x.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestSignupUnregisterRoundTrip(t *testing.T) {
	store := New(false)
	ctx := context.Background()

	before := store.List(ctx)["Chess Club"].Participants
	require.NoError(t, store.Signup(ctx, "Chess Club", "transient@mergington.edu"))
	require.NoError(t, store.Unregister(ctx, "Chess Club", "transient@mergington.edu"))
	require.Equal(t, before, store.List(ctx)["Chess Club"].Participants)
}

func TestCapacityNotEnforcedByDefault(t *testing.T) {
	store := New(false)
	ctx := context.Background()

	chess := store.List(ctx)["Chess Club"]
	overflow := chess.MaxParticipants - len(chess.Participants) + 1
	for i := 0; i < overflow; i++ {
		require.NoError(t, store.Signup(ctx, "Chess Club", fmt.Sprintf("student%d@mergington.edu", i)))
	}

	require.Len(t, store.List(ctx)["Chess Club"].Participants, chess.MaxParticipants+1)
}

func TestCapacityEnforcementOptIn(t *testing.T) {
	store := NewFromActivities(true, []domain.Activity{{
		Name:            "Debate Team",
		MaxParticipants: 2,
		Participants:    []string{"a@x.edu"},
	}})
	ctx := context.Background()

	require.NoError(t, store.Signup(ctx, "Debate Team", "b@x.edu"))
	require.ErrorIs(t, store.Signup(ctx, "Debate Team", "c@x.edu"), domain.ErrActivityFull)
	require.Len(t, store.List(ctx)["Debate Team"].Participants, 2)
}

func TestConcurrentSignups(t *testing.T) {
	store := New(false)
	ctx := context.Background()

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_ = store.Signup(ctx, "Gym Class", fmt.Sprintf("runner%d@mergington.edu", i))
		}(i)
	}
	wg.Wait()

	require.Len(t, store.List(ctx)["Gym Class"].Participants, 2+workers)
}
