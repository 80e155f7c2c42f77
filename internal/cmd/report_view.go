package cmd

import (
	"fmt"
	"strings"

	"weighttrend/internal/analytics"
	"weighttrend/internal/app"
	"weighttrend/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#7D56F4")
	colorGood    = lipgloss.Color("#04B575")
	colorBad     = lipgloss.Color("#FF5F87")
	colorDim     = lipgloss.Color("#767676")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorDim)
	downStyle    = lipgloss.NewStyle().Foreground(colorGood)
	upStyle      = lipgloss.NewStyle().Foreground(colorBad)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)

func renderReport(ov *app.Overview, unit domain.Unit) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Weight report, %s", ov.Today)))
	b.WriteString("\n\n")

	if ov.Empty {
		b.WriteString(mutedStyle.Render("No measurements yet."))
		b.WriteString("\n")
		b.WriteString(ov.Quote)
		return b.String()
	}

	if ov.Reminder != nil {
		b.WriteString(upStyle.Render(ov.Reminder.Message))
		b.WriteString("\n\n")
	}

	status := renderStatus(ov, unit)
	trend := renderTrend(ov.Trend, ov.Settings.GoalWeight, unit)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxStyle.Render(status), "  ", boxStyle.Render(trend)))
	b.WriteString("\n\n")

	b.WriteString(renderComparison("Weekly", ov.Weekly, unit))
	b.WriteString("\n")
	b.WriteString(renderComparison("Monthly", ov.Monthly, unit))
	b.WriteString("\n")
	b.WriteString(renderRecent(ov.Recent, unit))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(ov.Quote))
	return b.String()
}

func renderStatus(ov *app.Overview, unit domain.Unit) string {
	lines := []string{
		headingStyle.Render("Status"),
		fmt.Sprintf("Current  %s", weight(ov.Current.Weight, unit)),
		fmt.Sprintf("Start    %s", weight(ov.Initial.Weight, unit)),
		fmt.Sprintf("Change   %s", delta(*ov.NetDelta, unit)),
	}
	if ov.BMI != nil {
		lines = append(lines, fmt.Sprintf("BMI      %.1f (%s)", *ov.BMI, ov.BMICategory.Label()))
	}
	if ov.LastEntryAgeDays != nil {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("last entry %d day(s) ago", *ov.LastEntryAgeDays)))
	}
	return strings.Join(lines, "\n")
}

func renderTrend(t analytics.TrendResult, goal float64, unit domain.Unit) string {
	lines := []string{headingStyle.Render("Trend")}
	if !t.Determined {
		return strings.Join(append(lines, mutedStyle.Render("not enough data")), "\n")
	}
	lines = append(lines,
		fmt.Sprintf("Per week  %s", delta(t.WeeklyRate, unit)),
		fmt.Sprintf("Goal      %s", weight(goal, unit)),
	)
	if t.ETA != nil {
		lines = append(lines, fmt.Sprintf("ETA       %s", t.ETA))
	} else {
		lines = append(lines, mutedStyle.Render("goal not reachable on this trend"))
	}
	return strings.Join(lines, "\n")
}

func renderComparison(title string, c analytics.Comparison, unit domain.Unit) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(title))
	b.WriteString("\n")
	if !c.Sufficient {
		b.WriteString(mutedStyle.Render("insufficient data"))
		b.WriteString("\n")
		return b.String()
	}
	for _, row := range c.Rows {
		change := mutedStyle.Render("-")
		if row.Delta != nil {
			change = delta(*row.Delta, unit)
		}
		fmt.Fprintf(&b, "%s  %s  %s\n", row.PeriodEnd, weight(row.Value, unit), change)
	}
	return b.String()
}

func renderRecent(recent domain.Series, unit domain.Unit) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Recent entries"))
	b.WriteString("\n")
	for i := len(recent) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%s  %s\n", recent[i].Day, weight(recent[i].Weight, unit))
	}
	return b.String()
}

func weight(kg float64, unit domain.Unit) string {
	return fmt.Sprintf("%.1f %s", domain.ConvertWeight(kg, domain.UnitKg, unit), unit)
}

func delta(kg float64, unit domain.Unit) string {
	v := domain.ConvertWeight(kg, domain.UnitKg, unit)
	s := fmt.Sprintf("%+.1f %s", v, unit)
	switch {
	case v < 0:
		return downStyle.Render(s)
	case v > 0:
		return upStyle.Render(s)
	default:
		return s
	}
}
