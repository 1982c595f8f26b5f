package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mergingtonactivities/internal/domain"
	"mergingtonactivities/internal/observability"
)

type activityService struct {
	repo   domain.ActivityRepository
	emails domain.EmailService
	logger *slog.Logger
}

// NewActivityService creates an ActivityService over the given roster store.
// emails may be nil, in which case no notices are sent.
func NewActivityService(repo domain.ActivityRepository, emails domain.EmailService, logger *slog.Logger) domain.ActivityService {
	return &activityService{
		repo:   repo,
		emails: emails,
		logger: logger,
	}
}

func (s *activityService) ListActivities(ctx context.Context) (domain.Roster, error) {
	roster, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return roster, nil
}

func (s *activityService) Signup(ctx context.Context, activityName, email string) error {
	err := s.repo.AddParticipant(ctx, activityName, email)
	observability.RecordRosterOp(observability.OpSignup, err)
	if err != nil {
		if isRosterError(err) {
			return err
		}
		return fmt.Errorf("add participant: %w", err)
	}

	s.notify(ctx, activityName, email, func(ctx context.Context, data *domain.SignupEmailData) error {
		return s.emails.SendSignupConfirmation(ctx, data)
	})
	return nil
}

func (s *activityService) Unregister(ctx context.Context, activityName, email string) error {
	err := s.repo.RemoveParticipant(ctx, activityName, email)
	observability.RecordRosterOp(observability.OpUnregister, err)
	if err != nil {
		if isRosterError(err) {
			return err
		}
		return fmt.Errorf("remove participant: %w", err)
	}

	s.notify(ctx, activityName, email, func(ctx context.Context, data *domain.SignupEmailData) error {
		return s.emails.SendUnregisterNotice(ctx, data)
	})
	return nil
}

// notify sends an email notice after a successful roster change. The change
// has already happened, so failures are logged and counted only.
func (s *activityService) notify(ctx context.Context, activityName, email string, send func(context.Context, *domain.SignupEmailData) error) {
	if s.emails == nil {
		return
	}
	data := &domain.SignupEmailData{Email: email, ActivityName: activityName}
	if a, err := s.repo.Get(ctx, activityName); err == nil {
		data.Schedule = a.Schedule
	}
	if err := send(ctx, data); err != nil {
		observability.RecordNotificationFailure()
		s.logger.WarnContext(ctx, "email notice failed", "activity", activityName, "email", email, "err", err)
	}
}

func isRosterError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict)
}
