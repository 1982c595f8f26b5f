package services

import (
	"context"
	"fmt"

	"mergingtonactivities/internal/adapters/email"
	"mergingtonactivities/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

func (s *emailService) SendSignupConfirmation(ctx context.Context, data *domain.SignupEmailData) error {
	return s.send(ctx, email.TemplateSignupConfirmation, data)
}

func (s *emailService) SendUnregisterNotice(ctx context.Context, data *domain.SignupEmailData) error {
	return s.send(ctx, email.TemplateUnregisterNotice, data)
}

func (s *emailService) send(ctx context.Context, templateName string, data *domain.SignupEmailData) error {
	if data == nil {
		return fmt.Errorf("%s: email data is nil", templateName)
	}
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	return nil
}
