// Package memory holds the process-local roster store. State is lost on restart.
package memory

import (
	"context"
	"slices"
	"sync"

	"mergingtonactivities/internal/domain"
)

// ActivityRepository is a domain.ActivityRepository kept in process memory.
// A single lock guards the whole roster so concurrent signup and unregister
// calls on the same activity cannot produce duplicates or lost removals.
type ActivityRepository struct {
	mu     sync.RWMutex
	seed   domain.Roster
	roster domain.Roster
}

var _ domain.ActivityRepository = (*ActivityRepository)(nil)

// NewActivityRepository returns a store initialised with a copy of seed.
func NewActivityRepository(seed domain.Roster) *ActivityRepository {
	return &ActivityRepository{
		seed:   seed.Clone(),
		roster: seed.Clone(),
	}
}

// Reset restores the roster to the seed it was created with.
func (r *ActivityRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roster = r.seed.Clone()
}

func (r *ActivityRepository) List(ctx context.Context) (domain.Roster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.roster.Clone(), nil
}

func (r *ActivityRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.roster[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a.Clone(), nil
}

func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.roster[name]
	if !ok {
		return domain.ErrNotFound
	}
	if a.HasParticipant(email) {
		return domain.ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return nil
}

func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.roster[name]
	if !ok {
		return domain.ErrNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return domain.ErrNotRegistered
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	return nil
}
