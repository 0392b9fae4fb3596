package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/TahaKhan8899/goal-tracker/internal/model"
)

// ReminderMailer is the slice of EmailService the dispatcher needs.
type ReminderMailer interface {
	SendReminderEmail(goal *model.Goal) error
	SendWeeklyDigest(email string, digest GoalDigest) error
}

// ReminderResult records one reminder attempt.
type ReminderResult struct {
	Goal  string `json:"goal"`
	Email string `json:"email"`
	Sent  bool   `json:"sent"`
}

// DigestResult records one weekly digest attempt.
type DigestResult struct {
	Email           string `json:"email"`
	Sent            bool   `json:"sent"`
	CompletedCount  int    `json:"completedCount"`
	PendingCount    int    `json:"pendingCount"`
	IncompleteCount int    `json:"incompleteCount"`
}

// ReminderService batches due goals and weekly summaries into outbound
// email. Dispatch is fire-and-forget per recipient: sends fan out
// concurrently and a failed send is recorded in the result list
// without aborting the rest of the batch.
type ReminderService struct {
	goalService *GoalService
	userService *UserService
	mailer      ReminderMailer
}

func NewReminderService(goalService *GoalService, userService *UserService, mailer ReminderMailer) *ReminderService {
	return &ReminderService{
		goalService: goalService,
		userService: userService,
		mailer:      mailer,
	}
}

// SendReminders mails one reminder per pending goal due today.
func (s *ReminderService) SendReminders() ([]ReminderResult, error) {
	goals, err := s.goalService.DueToday(time.Now())
	if err != nil {
		return nil, err
	}

	results := make([]ReminderResult, len(goals))

	var wg sync.WaitGroup
	for i, goal := range goals {
		wg.Add(1)
		go func(i int, goal *model.Goal) {
			defer wg.Done()

			sendErr := s.mailer.SendReminderEmail(goal)
			if sendErr != nil {
				slog.Warn("reminder send failed", "error", sendErr, "goal_id", goal.ID, "to", goal.OwnerEmail)
			}

			results[i] = ReminderResult{
				Goal:  goal.Description,
				Email: goal.OwnerEmail,
				Sent:  sendErr == nil,
			}
		}(i, goal)
	}
	wg.Wait()

	return results, nil
}

// SendDigests mails every user one summary of their goals grouped by
// status.
func (s *ReminderService) SendDigests() ([]DigestResult, error) {
	users, err := s.userService.All()
	if err != nil {
		return nil, err
	}

	results := make([]DigestResult, len(users))

	var wg sync.WaitGroup
	for i, user := range users {
		wg.Add(1)
		go func(i int, user *model.User) {
			defer wg.Done()
			results[i] = s.sendDigest(user)
		}(i, user)
	}
	wg.Wait()

	return results, nil
}

func (s *ReminderService) sendDigest(user *model.User) DigestResult {
	result := DigestResult{Email: user.Email}

	goals, err := s.goalService.ByOwner(user.Email)
	if err != nil {
		slog.Warn("digest goal lookup failed", "error", err, "email", user.Email)
		return result
	}

	digest := groupByStatus(goals)
	result.CompletedCount = len(digest.Completed)
	result.PendingCount = len(digest.Pending)
	result.IncompleteCount = len(digest.Incomplete)

	err = s.mailer.SendWeeklyDigest(user.Email, digest)
	if err != nil {
		slog.Warn("digest send failed", "error", err, "email", user.Email)
		return result
	}

	result.Sent = true
	return result
}

func groupByStatus(goals []*model.Goal) GoalDigest {
	var digest GoalDigest
	for _, goal := range goals {
		switch goal.Status {
		case model.StatusCompleted:
			digest.Completed = append(digest.Completed, goal)
		case model.StatusIncomplete:
			digest.Incomplete = append(digest.Incomplete, goal)
		default:
			digest.Pending = append(digest.Pending, goal)
		}
	}
	return digest
}
