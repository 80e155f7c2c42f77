package app

import (
	"fmt"
	"time"

	"weighttrend/internal/domain"

	ics "github.com/arran4/golang-ical"
)

// OverdueAfterDays is the entry age that triggers an overdue reminder.
const OverdueAfterDays = 7

// ReminderKind tells the presentation layer why it should nag the user.
type ReminderKind string

const (
	ReminderWeekly  ReminderKind = "weekly"
	ReminderOverdue ReminderKind = "overdue"
)

// Reminder is a prompt to log a new measurement.
type Reminder struct {
	Kind         ReminderKind `json:"kind"`
	DaysSinceLog int          `json:"daysSinceLog,omitempty"`
	Message      string       `json:"message"`
}

// ReminderFor returns the reminder to show today, or nil. Sundays always
// get the weekly reminder; otherwise a last entry OverdueAfterDays or more
// days old triggers an overdue one.
func ReminderFor(today domain.Date, lastEntryAgeDays *int) *Reminder {
	if today.Weekday() == time.Sunday {
		return &Reminder{
			Kind:    ReminderWeekly,
			Message: "It's Sunday! Don't forget to log your weight.",
		}
	}
	if lastEntryAgeDays != nil && *lastEntryAgeDays >= OverdueAfterDays {
		return &Reminder{
			Kind:         ReminderOverdue,
			DaysSinceLog: *lastEntryAgeDays,
			Message:      fmt.Sprintf("You haven't logged a weight in %d days. How about now?", *lastEntryAgeDays),
		}
	}
	return nil
}

// ReminderCalendar renders an iCalendar document with a weekly Sunday 09:00
// event, starting on today. Times are floating local times.
func ReminderCalendar(today domain.Date) []byte {
	day := today.Time().Format("20060102")

	cal := ics.NewCalendarFor("weighttrend")
	cal.SetProductId("-//weighttrend//EN")

	event := cal.AddEvent("wt-reminder-" + today.String())
	event.SetDtStampTime(today.Time().Add(9 * time.Hour))
	event.SetProperty(ics.ComponentPropertyDtStart, day+"T090000")
	event.SetProperty(ics.ComponentPropertyDtEnd, day+"T091500")
	event.AddRrule("FREQ=WEEKLY;BYDAY=SU")
	event.SetSummary("Log weekly weight")
	event.SetDescription("Open weighttrend and record today's weight.")

	return []byte(cal.Serialize())
}

var quotes = []string{
	"Small steps, big results.",
	"Consistency beats intensity.",
	"You don't need to be perfect, just persistent.",
	"Discipline takes you where motivation can't.",
	"Better than yesterday, worse than tomorrow.",
	"Your future self will thank you for today.",
	"Progress over perfection.",
}

const (
	quoteFirstStep = "Every beginning is a step in the right direction."
	quoteWentDown  = "Nice work! The scale went down, celebrate and keep going!"
)

// PickQuote returns a motivational message for the series. intn must return
// a value in [0, n).
func PickQuote(series domain.Series, intn func(n int) int) string {
	if len(series) == 0 {
		return quoteFirstStep
	}
	if n := len(series); n >= 2 && series[n-1].Weight < series[n-2].Weight {
		return quoteWentDown
	}
	return quotes[intn(len(quotes))]
}
