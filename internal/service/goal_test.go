package service

import (
	"errors"
	"testing"
	"time"

	"github.com/TahaKhan8899/goal-tracker/internal/model"
	"github.com/TahaKhan8899/goal-tracker/internal/repository"
)

type fakeGoalRepo struct {
	goals       map[string]*model.Goal
	updateCalls int
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: map[string]*model.Goal{}}
}

func (r *fakeGoalRepo) Create(goal *model.Goal) error {
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) ByID(goalID string) (*model.Goal, error) {
	goal, ok := r.goals[goalID]
	if !ok {
		return nil, repository.ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeGoalRepo) ByUser(userID string) ([]*model.Goal, error) {
	var out []*model.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID {
			copied := *goal
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) All() ([]*model.Goal, error) {
	var out []*model.Goal
	for _, goal := range r.goals {
		copied := *goal
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeGoalRepo) DueOn(date string) ([]*model.Goal, error) {
	var out []*model.Goal
	for _, goal := range r.goals {
		if goal.TargetDate == date && goal.Status == model.StatusPending {
			copied := *goal
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(goal *model.Goal) error {
	r.updateCalls++
	if _, ok := r.goals[goal.ID]; !ok {
		return repository.ErrGoalNotFound
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) Delete(goalID string) error {
	if _, ok := r.goals[goalID]; !ok {
		return repository.ErrGoalNotFound
	}
	delete(r.goals, goalID)
	return nil
}

type fakeUserRepo struct {
	users    map[string]*model.User // keyed by id
	failByID bool
	failAll  bool
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*model.User{}}
	for _, user := range users {
		r.users[user.ID] = user
	}
	return r
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ByID(id string) (*model.User, error) {
	if r.failByID {
		return nil, errors.New("store unavailable")
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) ByEmail(email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) All() ([]*model.User, error) {
	if r.failAll {
		return nil, errors.New("store unavailable")
	}
	var out []*model.User
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

func testUser() *model.User {
	return &model.User{ID: "u1", Email: "sam@example.com", Name: "Sam", CreatedAt: time.Now()}
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(model.TargetDateLayout)
}

func TestCreateStartsPending(t *testing.T) {
	repo := newFakeGoalRepo()
	users := newFakeUserRepo(testUser())
	svc := NewGoalService(repo, users)

	goal, err := svc.Create("sam@example.com", "Run a marathon", futureDate(30))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if goal.ID == "" {
		t.Error("expected an assigned id")
	}
	if goal.Status != model.StatusPending {
		t.Errorf("status = %q, want pending", goal.Status)
	}
	if goal.OwnerEmail != "sam@example.com" || goal.OwnerName != "Sam" {
		t.Errorf("enrichment = (%q, %q), want owner fields", goal.OwnerEmail, goal.OwnerName)
	}
	if goal.Progress != 5 {
		t.Errorf("progress = %d, want 5 for a goal created today", goal.Progress)
	}
	if _, ok := repo.goals[goal.ID]; !ok {
		t.Error("goal was not persisted")
	}
}

func TestCreateRejectsMalformedTargetDate(t *testing.T) {
	svc := NewGoalService(newFakeGoalRepo(), newFakeUserRepo(testUser()))

	_, err := svc.Create("sam@example.com", "Run a marathon", "someday")
	if err != ErrInvalidTargetDate {
		t.Fatalf("err = %v, want ErrInvalidTargetDate", err)
	}
}

func TestCreateUnknownOwner(t *testing.T) {
	svc := NewGoalService(newFakeGoalRepo(), newFakeUserRepo())

	_, err := svc.Create("ghost@example.com", "Run a marathon", futureDate(30))
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("err = %v, want wrapped ErrUserNotFound", err)
	}
}

func TestUpdateRejectsInvalidStatusBeforeStore(t *testing.T) {
	repo := newFakeGoalRepo()
	users := newFakeUserRepo(testUser())
	svc := NewGoalService(repo, users)

	goal, err := svc.Create("sam@example.com", "Run a marathon", futureDate(30))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, status := range []string{"done", "", "Pending", "finished"} {
		_, err := svc.Update(goal.ID, GoalUpdates{Status: &status})
		if err != ErrInvalidStatus {
			t.Errorf("Update(status=%q) err = %v, want ErrInvalidStatus", status, err)
		}
	}

	if repo.updateCalls != 0 {
		t.Errorf("store was mutated %d times for invalid statuses", repo.updateCalls)
	}
}

func TestUpdateEmpty(t *testing.T) {
	svc := NewGoalService(newFakeGoalRepo(), newFakeUserRepo(testUser()))

	_, err := svc.Update("g1", GoalUpdates{})
	if err != ErrEmptyUpdate {
		t.Fatalf("err = %v, want ErrEmptyUpdate", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := newFakeGoalRepo()
	svc := NewGoalService(repo, newFakeUserRepo(testUser()))

	goal, err := svc.Create("sam@example.com", "Run a marathon", futureDate(30))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateStatus(goal.ID, model.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != model.StatusCompleted {
		t.Errorf("status = %q, want completed", updated.Status)
	}
	if updated.Progress != 100 {
		t.Errorf("progress = %d, want 100 for a terminal status", updated.Progress)
	}

	// Terminal states may be reset back to pending
	updated, err = svc.UpdateStatus(goal.ID, model.StatusPending)
	if err != nil {
		t.Fatalf("UpdateStatus back to pending: %v", err)
	}
	if updated.Status != model.StatusPending {
		t.Errorf("status = %q, want pending after reset", updated.Status)
	}
}

func TestUpdateEnrichmentFailureDoesNotRollBack(t *testing.T) {
	repo := newFakeGoalRepo()
	users := newFakeUserRepo(testUser())
	svc := NewGoalService(repo, users)

	goal, err := svc.Create("sam@example.com", "Run a marathon", futureDate(30))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	users.failByID = true

	updated, err := svc.UpdateStatus(goal.ID, model.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.OwnerEmail != "" || updated.OwnerName != "" {
		t.Errorf("enrichment = (%q, %q), want blank fallback", updated.OwnerEmail, updated.OwnerName)
	}

	// The write must have stuck despite the failed lookup
	stored, err := repo.ByID(goal.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if stored.Status != model.StatusCompleted {
		t.Errorf("stored status = %q, want completed", stored.Status)
	}
}

func TestByOwnerUnknownEmailIsEmpty(t *testing.T) {
	svc := NewGoalService(newFakeGoalRepo(), newFakeUserRepo(testUser()))

	goals, err := svc.ByOwner("ghost@example.com")
	if err != nil {
		t.Fatalf("ByOwner: %v", err)
	}
	if goals == nil || len(goals) != 0 {
		t.Errorf("goals = %v, want empty list", goals)
	}
}

func TestAllEnrichesAcrossUsers(t *testing.T) {
	repo := newFakeGoalRepo()
	other := &model.User{ID: "u2", Email: "alex@example.com", CreatedAt: time.Now()}
	users := newFakeUserRepo(testUser(), other)
	svc := NewGoalService(repo, users)

	if _, err := svc.Create("sam@example.com", "Run a marathon", futureDate(30)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create("alex@example.com", "Read 12 books", futureDate(60)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	goals, err := svc.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("len(goals) = %d, want 2", len(goals))
	}

	for _, goal := range goals {
		if goal.OwnerEmail == "" {
			t.Errorf("goal %s missing owner email", goal.ID)
		}
	}

	// alex has no display name, so the email stands in
	for _, goal := range goals {
		if goal.UserID == "u2" && goal.OwnerName != "alex@example.com" {
			t.Errorf("owner name = %q, want email fallback", goal.OwnerName)
		}
	}
}

func TestDueTodayFiltersStatusAndDate(t *testing.T) {
	repo := newFakeGoalRepo()
	users := newFakeUserRepo(testUser())
	svc := NewGoalService(repo, users)

	dueToday, err := svc.Create("sam@example.com", "Due today", futureDate(0))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create("sam@example.com", "Due tomorrow", futureDate(1)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	doneToday, err := svc.Create("sam@example.com", "Done already", futureDate(0))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.UpdateStatus(doneToday.ID, model.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	due, err := svc.DueToday(time.Now())
	if err != nil {
		t.Fatalf("DueToday: %v", err)
	}
	if len(due) != 1 || due[0].ID != dueToday.ID {
		t.Fatalf("due = %v, want only the pending goal due today", due)
	}
	if due[0].OwnerEmail != "sam@example.com" {
		t.Errorf("due goal missing owner email for the reminder")
	}
}
