package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"mergingtonactivities/internal/domain"
	"mergingtonactivities/internal/repository/memory"
)

type mockEmailService struct {
	confirmations []*domain.SignupEmailData
	notices       []*domain.SignupEmailData
	err           error
}

func (m *mockEmailService) SendSignupConfirmation(ctx context.Context, data *domain.SignupEmailData) error {
	m.confirmations = append(m.confirmations, data)
	return m.err
}

func (m *mockEmailService) SendUnregisterNotice(ctx context.Context, data *domain.SignupEmailData) error {
	m.notices = append(m.notices, data)
	return m.err
}

type failingRepository struct {
	err error
}

func (f *failingRepository) List(ctx context.Context) (domain.Roster, error) { return nil, f.err }
func (f *failingRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	return nil, f.err
}
func (f *failingRepository) AddParticipant(ctx context.Context, name, email string) error {
	return f.err
}
func (f *failingRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	return f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestActivityService_ListActivities(t *testing.T) {
	svc := NewActivityService(memory.NewActivityRepository(domain.SeedActivities()), nil, testLogger())

	roster, err := svc.ListActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 9)
	require.Contains(t, roster, "Chess Club")
	require.Contains(t, roster, "Programming Class")
}

func TestActivityService_Signup(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		activity  string
		email     string
		wantErr   error
		wantMails int
	}{
		{"success sends confirmation", "Chess Club", "newstudent@mergington.edu", nil, 1},
		{"duplicate", "Chess Club", "michael@mergington.edu", domain.ErrAlreadySignedUp, 0},
		{"unknown activity", "Nonexistent Club", "student@mergington.edu", domain.ErrNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewActivityRepository(domain.SeedActivities())
			mails := &mockEmailService{}
			svc := NewActivityService(repo, mails, testLogger())

			err := svc.Signup(ctx, tt.activity, tt.email)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				a, err := repo.Get(ctx, tt.activity)
				require.NoError(t, err)
				require.True(t, a.HasParticipant(tt.email))
			}
			require.Len(t, mails.confirmations, tt.wantMails)
			if tt.wantMails > 0 {
				got := mails.confirmations[0]
				require.Equal(t, tt.email, got.Email)
				require.Equal(t, tt.activity, got.ActivityName)
				require.Equal(t, "Fridays, 3:30 PM - 5:00 PM", got.Schedule)
			}
		})
	}
}

func TestActivityService_Unregister(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		activity  string
		email     string
		wantErr   error
		wantMails int
	}{
		{"success sends notice", "Drama Society", "ethan@mergington.edu", nil, 1},
		{"not registered", "Chess Club", "notregistered@mergington.edu", domain.ErrNotRegistered, 0},
		{"unknown activity", "Nonexistent Club", "student@mergington.edu", domain.ErrNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewActivityRepository(domain.SeedActivities())
			mails := &mockEmailService{}
			svc := NewActivityService(repo, mails, testLogger())

			err := svc.Unregister(ctx, tt.activity, tt.email)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				a, err := repo.Get(ctx, tt.activity)
				require.NoError(t, err)
				require.False(t, a.HasParticipant(tt.email))
			}
			require.Len(t, mails.notices, tt.wantMails)
		})
	}
}

func TestActivityService_EmailFailureDoesNotFailSignup(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewActivityRepository(domain.SeedActivities())
	mails := &mockEmailService{err: errors.New("smtp down")}
	svc := NewActivityService(repo, mails, testLogger())

	require.NoError(t, svc.Signup(ctx, "Art Club", "test@mergington.edu"))
	require.NoError(t, svc.Unregister(ctx, "Art Club", "test@mergington.edu"))
	require.Len(t, mails.confirmations, 1)
	require.Len(t, mails.notices, 1)
}

func TestActivityService_RepositoryErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset")
	svc := NewActivityService(&failingRepository{err: dbErr}, &mockEmailService{}, testLogger())

	_, err := svc.ListActivities(ctx)
	require.ErrorIs(t, err, dbErr)

	err = svc.Signup(ctx, "Chess Club", "a@mergington.edu")
	require.ErrorIs(t, err, dbErr)
	require.Contains(t, err.Error(), "add participant")

	err = svc.Unregister(ctx, "Chess Club", "a@mergington.edu")
	require.ErrorIs(t, err, dbErr)
	require.Contains(t, err.Error(), "remove participant")
}

func TestActivityService_SignupThenUnregisterRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewActivityRepository(domain.SeedActivities())
	svc := NewActivityService(repo, nil, testLogger())

	before, err := repo.Get(ctx, "Soccer Team")
	require.NoError(t, err)

	require.NoError(t, svc.Signup(ctx, "Soccer Team", "integration@mergington.edu"))
	require.NoError(t, svc.Unregister(ctx, "Soccer Team", "integration@mergington.edu"))

	after, err := repo.Get(ctx, "Soccer Team")
	require.NoError(t, err)
	require.Equal(t, before.Participants, after.Participants)
}
