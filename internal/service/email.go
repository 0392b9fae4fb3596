package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/resend/resend-go/v2"

	"github.com/TahaKhan8899/goal-tracker/internal/model"
)

// GoalDigest groups a user's goals by status for the weekly summary.
type GoalDigest struct {
	Completed  []*model.Goal
	Pending    []*model.Goal
	Incomplete []*model.Goal
}

type EmailService struct {
	client    *resend.Client
	fromEmail string
	isDev     bool
	appURL    string
	appName   string
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		isDev:     isDev,
		appURL:    appURL,
		appName:   appName,
	}
}

// SendReminderEmail mails the goal's owner that the goal is due today,
// with one-click links flipping the status to completed or incomplete.
// The links carry the goal id, target status and owner email as plain
// query parameters.
func (s *EmailService) SendReminderEmail(goal *model.Goal) error {
	completedURL := s.statusURL(goal, model.StatusCompleted)
	incompleteURL := s.statusURL(goal, model.StatusIncomplete)
	subject, body := reminderEmailTemplate(goal.Description, completedURL, incompleteURL, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "reminder", "to", goal.OwnerEmail, "subject", subject, "goal_id", goal.ID)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{goal.OwnerEmail},
		Subject: subject,
		Html:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "reminder", "to", goal.OwnerEmail, "goal_id", goal.ID)
	}
	return err
}

// SendWeeklyDigest mails one summary of the user's goals grouped by
// status.
func (s *EmailService) SendWeeklyDigest(email string, digest GoalDigest) error {
	subject, body := weeklyDigestTemplate(digest, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "digest", "to", email, "subject", subject,
			"completed", len(digest.Completed), "pending", len(digest.Pending), "incomplete", len(digest.Incomplete))
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Html:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "digest", "to", email)
	}
	return err
}

func (s *EmailService) statusURL(goal *model.Goal, status string) string {
	return fmt.Sprintf("%s/api/goals/updateStatus?id=%s&status=%s&email=%s",
		s.appURL, goal.ID, status, url.QueryEscape(goal.OwnerEmail))
}
