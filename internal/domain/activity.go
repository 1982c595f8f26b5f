package domain

import (
	"context"
	"slices"
)

// Activity is an extracurricular offering. The activity name is the key of the
// Roster and is not repeated inside the record.
// swagger:model Activity
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity returns an Activity with an empty, non-nil participant list.
func NewActivity(description, schedule string, maxParticipants int) *Activity {
	return &Activity{
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    []string{},
	}
}

// Clone returns a deep copy of the activity.
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = slices.Clone(a.Participants)
	if c.Participants == nil {
		c.Participants = []string{}
	}
	return &c
}

// HasParticipant reports whether email is on the participant list.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// SpotsLeft is informational; capacity is not enforced on signup.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Roster maps activity name to activity.
type Roster map[string]*Activity

// Clone returns a deep copy of the roster.
func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	for name, a := range r {
		out[name] = a.Clone()
	}
	return out
}

// Names returns the activity names in sorted order.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ActivityRepository defines storage operations for the roster.
type ActivityRepository interface {
	// List returns a copy of the full roster.
	List(ctx context.Context) (Roster, error)
	Get(ctx context.Context, name string) (*Activity, error)
	// AddParticipant appends email to the activity. Returns ErrNotFound or ErrAlreadySignedUp.
	AddParticipant(ctx context.Context, name, email string) error
	// RemoveParticipant removes email from the activity. Returns ErrNotFound or ErrNotRegistered.
	RemoveParticipant(ctx context.Context, name, email string) error
}

// ActivityService defines the student-facing signup operations.
type ActivityService interface {
	ListActivities(ctx context.Context) (Roster, error)
	Signup(ctx context.Context, activityName, email string) error
	Unregister(ctx context.Context, activityName, email string) error
}
