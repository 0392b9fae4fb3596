package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/TahaKhan8899/goal-tracker/internal/model"
	"github.com/TahaKhan8899/goal-tracker/internal/progress"
	"github.com/TahaKhan8899/goal-tracker/internal/repository"
)

var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTargetDate = errors.New("invalid target date")
	ErrEmptyUpdate       = errors.New("no updates provided")
)

// GoalUpdates carries a partial update: nil fields are left untouched.
type GoalUpdates struct {
	Description *string
	TargetDate  *string
	Status      *string
}

func (u GoalUpdates) Empty() bool {
	return u.Description == nil && u.TargetDate == nil && u.Status == nil
}

type GoalService struct {
	repo     repository.GoalRepository
	userRepo repository.UserRepository
}

func NewGoalService(repo repository.GoalRepository, userRepo repository.UserRepository) *GoalService {
	return &GoalService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// ByOwner lists a user's goals, enriched with owner display fields and
// progress. An unknown email yields an empty list, matching a lookup
// that simply finds no goals.
func (s *GoalService) ByOwner(email string) ([]*model.Goal, error) {
	user, err := s.userRepo.ByEmail(email)
	if err == repository.ErrUserNotFound {
		return []*model.Goal{}, nil
	}
	if err != nil {
		return nil, err
	}

	goals, err := s.repo.ByUser(user.ID)
	if err != nil {
		return nil, err
	}

	for _, goal := range goals {
		goal.Progress = progress.ForGoal(goal, time.Now())
		goal.OwnerEmail = user.Email
		goal.OwnerName = user.DisplayName()
	}

	return goals, nil
}

func (s *GoalService) Create(email, description, targetDate string) (*model.Goal, error) {
	if _, err := time.Parse(model.TargetDateLayout, targetDate); err != nil {
		return nil, ErrInvalidTargetDate
	}

	user, err := s.userRepo.ByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve goal owner: %w", err)
	}

	now := time.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Description: description,
		TargetDate:  targetDate,
		Status:      model.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.enrich(goal)
	return goal, nil
}

// Update applies a partial update. The status value is checked against
// the three allowed states before anything reaches the store. The
// returned goal is enriched best-effort: a failed owner lookup after a
// successful write leaves the display fields blank, it never rolls the
// write back.
func (s *GoalService) Update(goalID string, updates GoalUpdates) (*model.Goal, error) {
	if updates.Empty() {
		return nil, ErrEmptyUpdate
	}
	if updates.Status != nil && !model.ValidStatus(*updates.Status) {
		return nil, ErrInvalidStatus
	}
	if updates.TargetDate != nil {
		if _, err := time.Parse(model.TargetDateLayout, *updates.TargetDate); err != nil {
			return nil, ErrInvalidTargetDate
		}
	}

	goal, err := s.repo.ByID(goalID)
	if err != nil {
		return nil, err
	}

	if updates.Description != nil {
		goal.Description = *updates.Description
	}
	if updates.TargetDate != nil {
		goal.TargetDate = *updates.TargetDate
	}
	if updates.Status != nil {
		goal.Status = *updates.Status
	}
	goal.UpdatedAt = time.Now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	s.enrich(goal)
	return goal, nil
}

// UpdateStatus flips a goal to the given status, used by the one-click
// email links and the dashboard toggles.
func (s *GoalService) UpdateStatus(goalID, status string) (*model.Goal, error) {
	return s.Update(goalID, GoalUpdates{Status: &status})
}

func (s *GoalService) Delete(goalID string) error {
	return s.repo.Delete(goalID)
}

// All returns every goal across users for the admin view, with owners
// resolved in one batch.
func (s *GoalService) All() ([]*model.Goal, error) {
	goals, err := s.repo.All()
	if err != nil {
		return nil, err
	}

	users := map[string]*model.User{}
	all, err := s.userRepo.All()
	if err != nil {
		slog.Warn("owner batch lookup failed, returning goals without display fields", "error", err)
	} else {
		for _, user := range all {
			users[user.ID] = user
		}
	}

	now := time.Now()
	for _, goal := range goals {
		goal.Progress = progress.ForGoal(goal, now)
		if user, ok := users[goal.UserID]; ok {
			goal.OwnerEmail = user.Email
			goal.OwnerName = user.DisplayName()
		}
	}

	return goals, nil
}

// DueToday returns pending goals whose target date is today, enriched
// so the dispatcher knows where to send each reminder.
func (s *GoalService) DueToday(now time.Time) ([]*model.Goal, error) {
	goals, err := s.repo.DueOn(now.Format(model.TargetDateLayout))
	if err != nil {
		return nil, err
	}

	for _, goal := range goals {
		s.enrich(goal)
	}

	return goals, nil
}

// enrich resolves the owner's display fields with a secondary lookup
// and computes the progress percentage. Lookup failure leaves the
// fields blank.
func (s *GoalService) enrich(goal *model.Goal) {
	goal.Progress = progress.ForGoal(goal, time.Now())

	user, err := s.userRepo.ByID(goal.UserID)
	if err != nil {
		slog.Warn("owner lookup failed, returning goal without display fields", "error", err, "goal_id", goal.ID)
		return
	}

	goal.OwnerEmail = user.Email
	goal.OwnerName = user.DisplayName()
}
