package accounting

import (
	"time"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Average Gregorian month length, in days.
var averageMonthDays = decimal.RequireFromString("30.44")

var millisPerDay = decimal.NewFromInt(int64(24 * time.Hour / time.Millisecond))

// MonthsToTarget is the number of average months between now and the target day, rounded up.
// It is never below 1, also when the target day is missing or unreadable.
func MonthsToTarget(targetDate string, now time.Time) int64 {
	target, ok := parseDay(targetDate)
	if !ok {
		return 1
	}
	diff := target.Sub(now)
	if diff < 0 {
		diff = -diff
	}
	days := decimal.NewFromInt(diff.Milliseconds()).Div(millisPerDay)
	months := days.Div(averageMonthDays).Ceil().IntPart()
	if months < 1 {
		return 1
	}
	return months
}

// ProjectGoals computes remaining amount, months to target, required monthly contribution and
// the linked deposit history of every goal, in input order.
func ProjectGoals(goals []domain.Goal, transactions []domain.Transaction, now time.Time) []domain.GoalView {
	views := make([]domain.GoalView, len(goals))
	for i, g := range goals {
		remaining := g.Target.Sub(g.Current)
		months := MonthsToTarget(g.TargetDate, now)

		monthly := decimal.Zero
		if remaining.IsPositive() {
			monthly = remaining.Div(decimal.NewFromInt(months)).Ceil()
		}

		var history []domain.Transaction
		for _, tx := range transactions {
			if tx.LinkedID != "" && tx.LinkedID == g.ID {
				history = append(history, tx)
			}
		}

		views[i] = domain.GoalView{
			Goal:            g,
			Remaining:       remaining,
			MonthsToTarget:  months,
			MonthlyRequired: monthly,
			History:         sortNewestFirst(history),
		}
	}
	return views
}
