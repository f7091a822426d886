package domain

import "errors"

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the activity's roster.
	ErrAlreadySignedUp = errors.New("student is already signed up for this activity")
	// ErrNotRegistered indicates the email is not on the activity's roster.
	ErrNotRegistered = errors.New("student is not registered for this activity")
	// ErrActivityFull is returned only when capacity enforcement is enabled.
	ErrActivityFull = errors.New("activity is full")
)

// Activity is a named extracurricular offering with fixed descriptive
// metadata and a mutable participant list. Participants hold student emails
// in signup order; an email appears at most once per activity.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}
