// Package domain defines the business logic for the activities service.
package domain

import (
	"context"
	"fmt"
)

// Roster captures the operations the activity store must support. Activity
// names are matched exactly, including case and spaces.
type Roster interface {
	List(ctx context.Context) map[string]Activity
	Signup(ctx context.Context, activityName, email string) error
	Unregister(ctx context.Context, activityName, email string) error
}

// Service orchestrates roster workflows.
type Service struct {
	roster Roster
}

// NewService constructs a Service.
func NewService(roster Roster) *Service {
	return &Service{roster: roster}
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) map[string]Activity {
	return s.roster.List(ctx)
}

// SignupStudent adds the email to the activity's roster and returns the
// confirmation message shown to the student.
func (s *Service) SignupStudent(ctx context.Context, activityName, email string) (string, error) {
	if err := s.roster.Signup(ctx, activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// UnregisterStudent removes the email from the activity's roster and returns
// the confirmation message.
func (s *Service) UnregisterStudent(ctx context.Context, activityName, email string) (string, error) {
	if err := s.roster.Unregister(ctx, activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}
