package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, toEmail, toName, subject, body string) error {
	logger.ExternalServiceCall("sendgrid", "send", "to", toEmail, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}

func (s *emailService) SendLandlordApproval(ctx context.Context, email, name, adminName string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour landlord account has been approved by %s. You can now sign in and manage your properties.\n\nBest regards,\nThe PropertyHub Team", name, adminName)
	return s.send(ctx, email, name, "Your landlord account has been approved", body)
}

func (s *emailService) SendLandlordRejection(ctx context.Context, email, name, adminName, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour landlord account application has been rejected by %s.", name, adminName)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe PropertyHub Team"
	return s.send(ctx, email, name, "Your landlord account application was rejected", body)
}

func (s *emailService) SendPMCApproval(ctx context.Context, email, name, adminName string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour property management company account has been approved by %s. You can now sign in and manage your portfolio.\n\nBest regards,\nThe PropertyHub Team", name, adminName)
	return s.send(ctx, email, name, "Your company account has been approved", body)
}

func (s *emailService) SendPMCRejection(ctx context.Context, email, name, adminName, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour property management company application has been rejected by %s.", name, adminName)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe PropertyHub Team"
	return s.send(ctx, email, name, "Your company application was rejected", body)
}

func (s *emailService) SendTenantApproval(ctx context.Context, email, name, landlordName string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour landlord %s has approved your tenant account. You now have access to your tenant portal.\n\nBest regards,\nThe PropertyHub Team", name, landlordName)
	return s.send(ctx, email, name, "Your tenant account has been approved", body)
}

func (s *emailService) SendTenantRejection(ctx context.Context, email, name, landlordName, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour landlord %s has rejected your tenant account request.", name, landlordName)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe PropertyHub Team"
	return s.send(ctx, email, name, "Your tenant account request was rejected", body)
}

func (s *emailService) SendPendingApprovalsReminder(ctx context.Context, opsEmail string, pending map[domain.EntityKind]int32) error {
	body := "Hello,\n\nThe following accounts are waiting for review:\n"
	for _, kind := range []domain.EntityKind{domain.EntityKindLandlord, domain.EntityKindPMC, domain.EntityKindTenant} {
		if n, ok := pending[kind]; ok {
			body += fmt.Sprintf("\n  %s: %d pending", kind, n)
		}
	}
	body += "\n\nBest regards,\nThe PropertyHub Team"
	return s.send(ctx, opsEmail, "PropertyHub Operations", "Pending approvals reminder", body)
}
