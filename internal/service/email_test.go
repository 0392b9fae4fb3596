package service

import (
	"strings"
	"testing"
	"time"

	"github.com/TahaKhan8899/goal-tracker/internal/model"
)

func emailTestGoal() *model.Goal {
	return &model.Goal{
		ID:          "g1",
		UserID:      "u1",
		Description: `Read "Dune" by March`,
		TargetDate:  "2030-03-01",
		Status:      model.StatusPending,
		OwnerEmail:  "sam+reading@example.com",
		OwnerName:   "Sam",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestDevModeSkipsDelivery(t *testing.T) {
	svc := NewEmailService("", "from@example.com", "http://localhost:8090", "Goal Tracker", true)

	if err := svc.SendReminderEmail(emailTestGoal()); err != nil {
		t.Errorf("SendReminderEmail in dev mode: %v", err)
	}
	if err := svc.SendWeeklyDigest("sam@example.com", GoalDigest{}); err != nil {
		t.Errorf("SendWeeklyDigest in dev mode: %v", err)
	}
}

func TestUnconfiguredProductionEmailErrors(t *testing.T) {
	svc := NewEmailService("", "from@example.com", "http://localhost:8090", "Goal Tracker", false)

	if err := svc.SendReminderEmail(emailTestGoal()); err == nil {
		t.Error("expected an error without an API key")
	}
	if err := svc.SendWeeklyDigest("sam@example.com", GoalDigest{}); err == nil {
		t.Error("expected an error without an API key")
	}
}

func TestStatusURLEscapesEmail(t *testing.T) {
	svc := NewEmailService("", "from@example.com", "https://goals.example.com", "Goal Tracker", true)

	got := svc.statusURL(emailTestGoal(), model.StatusCompleted)
	want := "https://goals.example.com/api/goals/updateStatus?id=g1&status=completed&email=sam%2Breading%40example.com"
	if got != want {
		t.Errorf("statusURL = %q, want %q", got, want)
	}
}

func TestReminderTemplateCarriesBothLinks(t *testing.T) {
	subject, body := reminderEmailTemplate(
		`Read "Dune" by March`,
		"https://goals.example.com/done",
		"https://goals.example.com/missed",
		"Goal Tracker",
	)

	if !strings.Contains(subject, "due today") {
		t.Errorf("subject = %q, want a due-today reminder", subject)
	}
	if !strings.Contains(body, "https://goals.example.com/done") {
		t.Error("body missing the completed link")
	}
	if !strings.Contains(body, "https://goals.example.com/missed") {
		t.Error("body missing the incomplete link")
	}
	// Description is escaped before interpolation
	if !strings.Contains(body, "&#34;Dune&#34;") && !strings.Contains(body, "&quot;Dune&quot;") {
		t.Errorf("body does not escape the goal description: %s", body)
	}
	if strings.Contains(body, `"Dune" by March</strong>`) {
		t.Error("raw quotes leaked into the html body")
	}
}

func TestWeeklyDigestTemplateSections(t *testing.T) {
	digest := GoalDigest{
		Completed:  []*model.Goal{{Description: "Finished thing"}},
		Pending:    []*model.Goal{{Description: "Ongoing thing", TargetDate: "2030-06-01"}},
		Incomplete: []*model.Goal{{Description: "Missed thing"}},
	}

	_, body := weeklyDigestTemplate(digest, "Goal Tracker")

	for _, want := range []string{"Finished thing", "Ongoing thing", "Missed thing", "Due: Jun 1, 2030"} {
		if !strings.Contains(body, want) {
			t.Errorf("digest body missing %q", want)
		}
	}
}
