package service

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/TahaKhan8899/goal-tracker/internal/model"
)

func reminderEmailTemplate(description, completedURL, incompleteURL, appName string) (string, string) {
	subject := "Reminder: Your goal is due today"
	body := fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #333;">Goal Reminder</h1>
  <p>Your goal <strong>&quot;%s&quot;</strong> was due today.</p>
  <p>Did you complete it?</p>

  <div style="margin: 30px 0;">
    <a href="%s" style="background-color: #4CAF50; color: white; padding: 12px 20px; text-decoration: none; margin-right: 10px; border-radius: 4px;">
      Yes, I completed it
    </a>
    <a href="%s" style="background-color: #f44336; color: white; padding: 12px 20px; text-decoration: none; border-radius: 4px;">
      No, I didn't complete it
    </a>
  </div>

  <p style="color: #666; font-size: 0.8em;">
    You're receiving this email because you've set up a goal in %s.
  </p>
</div>`, html.EscapeString(description), completedURL, incompleteURL, appName)

	return subject, body
}

func weeklyDigestTemplate(digest GoalDigest, appName string) (string, string) {
	subject := "Your Weekly Goal Progress Recap"

	var b strings.Builder
	b.WriteString(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #333;">Your Weekly Recap</h1>`)

	writeDigestSection(&b, "Completed", "#4CAF50", "#f2f9f2", digest.Completed, false)
	writeDigestSection(&b, "Still Working On", "#FFC107", "#fffbeb", digest.Pending, true)
	writeDigestSection(&b, "Incomplete", "#F44336", "#feebeb", digest.Incomplete, false)

	b.WriteString(`
  <p style="margin-top: 30px; font-weight: bold;">Let's make next week even better!</p>
  <p style="color: #666; font-size: 0.8em; margin-top: 50px;">
    You're receiving this email because you've set up goals in ` + appName + `.
  </p>
</div>`)

	return subject, b.String()
}

func writeDigestSection(b *strings.Builder, heading, color, background string, goals []*model.Goal, withDue bool) {
	if len(goals) == 0 {
		return
	}

	fmt.Fprintf(b, `
  <h2 style="color: %s;">%s:</h2>
  <ul style="list-style-type: none; padding: 0;">`, color, heading)

	for _, goal := range goals {
		text := html.EscapeString(goal.Description)
		if withDue {
			if due, err := time.Parse(model.TargetDateLayout, goal.TargetDate); err == nil {
				text = fmt.Sprintf("%s (Due: %s)", text, due.Format("Jan 2, 2006"))
			}
		}
		fmt.Fprintf(b, `
    <li style="margin-bottom: 10px; padding: 10px; background-color: %s; border-radius: 4px;">%s</li>`, background, text)
	}

	b.WriteString(`
  </ul>`)
}
