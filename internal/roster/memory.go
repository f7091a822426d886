// Package roster provides the in-memory activity store.
package roster

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// Store holds every activity keyed by name. All operations take the mutex,
// so each signup or unregister is a single atomic read-modify-write even
// when the HTTP server dispatches requests concurrently.
type Store struct {
	mu              sync.RWMutex
	activities      map[string]domain.Activity
	enforceCapacity bool
}

// New constructs a Store seeded with the school's activity catalog.
// Capacity enforcement is off by default; when enabled, a full activity
// rejects further signups with domain.ErrActivityFull.
func New(enforceCapacity bool) *Store {
	return NewFromActivities(enforceCapacity, seedActivities())
}

// NewFromActivities constructs a Store holding the given activities instead
// of the default catalog. Test fixtures use this to inject extra entries.
func NewFromActivities(enforceCapacity bool, activities []domain.Activity) *Store {
	s := &Store{
		activities:      make(map[string]domain.Activity, len(activities)),
		enforceCapacity: enforceCapacity,
	}
	for _, act := range activities {
		s.activities[act.Name] = act
		observability.SetParticipantCount(act.Name, len(act.Participants))
	}
	return s
}

func seedActivities() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

// List returns a deep copy of the full catalog. Mutating the returned map or
// its participant slices never affects the store.
func (s *Store) List(ctx context.Context) map[string]domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Activity, len(s.activities))
	for name, act := range s.activities {
		act.Participants = append([]string(nil), act.Participants...)
		out[name] = act
	}
	return out
}

// Signup appends the email to the activity's participant list.
func (s *Store) Signup(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, participant := range act.Participants {
		if participant == email {
			return domain.ErrAlreadySignedUp
		}
	}
	if s.enforceCapacity && len(act.Participants) >= act.MaxParticipants {
		return domain.ErrActivityFull
	}

	act.Participants = append(act.Participants, email)
	s.activities[activityName] = act
	observability.SetParticipantCount(activityName, len(act.Participants))
	return nil
}

// Unregister removes the email from the activity's participant list,
// preserving the order of the remaining entries.
func (s *Store) Unregister(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}

	idx := -1
	for i, participant := range act.Participants {
		if participant == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotRegistered
	}

	act.Participants = append(act.Participants[:idx:idx], act.Participants[idx+1:]...)
	s.activities[activityName] = act
	observability.SetParticipantCount(activityName, len(act.Participants))
	return nil
}
