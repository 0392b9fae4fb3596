// Package progress computes the display percentage for a goal from its
// timestamps and status. The calculation is purely informational: it
// maps elapsed time against the goal's total span, it never errors, and
// malformed input degrades to 0 rather than crashing a page.
package progress

import (
	"math"
	"time"

	"github.com/TahaKhan8899/goal-tracker/internal/model"
)

// minimumPercent is shown for goals created today so a brand-new goal
// renders visible progress instead of an empty bar.
const minimumPercent = 5

// Percent returns an integer in [0,100] for a goal created at
// createdAt with the given target date (model.TargetDateLayout) and
// status, evaluated at now.
//
// Rules, in priority order:
//  1. completed/incomplete goals are always full
//  2. overdue goals are full
//  3. a non-positive span yields 0
//  4. goals created today yield the fixed minimum
//  5. otherwise round(elapsed/span*100), capped at 100
func Percent(createdAt time.Time, targetDate string, now time.Time, status string) int {
	if model.Terminal(status) {
		return 100
	}

	target, err := time.Parse(model.TargetDateLayout, targetDate)
	if err != nil {
		return 0
	}

	created := dateOf(createdAt)
	target = dateOf(target)
	today := dateOf(now)

	if today.After(target) {
		return 100
	}

	totalDays := daysBetween(created, target)
	if totalDays <= 0 {
		return 0
	}

	elapsed := daysBetween(created, today)
	if elapsed <= 0 {
		return minimumPercent
	}

	pct := int(math.Round(float64(elapsed) / float64(totalDays) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// ForGoal evaluates Percent against the goal's own fields.
func ForGoal(g *model.Goal, now time.Time) int {
	return Percent(g.CreatedAt, g.TargetDate, now, g.Status)
}

// dateOf truncates t to its calendar date in UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
