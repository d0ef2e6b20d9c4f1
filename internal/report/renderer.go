package report

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/leyangloh/progress-bot/internal/domain"
)

const barWidth = 20

// dateFormat is used for due dates and the generation timestamp
const dateFormat = "January 02, 2006"

// statusText maps status labels to their human-readable form
var statusText = map[domain.StatusLabel]string{
	domain.StatusNotStarted: "Not Started",
	domain.StatusInProgress: "In Progress",
	domain.StatusComplete:   "Complete",
}

// RenderText renders a report as plain text. Output is deterministic:
// identical reports produce byte-identical text.
func RenderText(r *domain.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s/%s Weekly Progress\n", r.Owner, r.Repo)
	fmt.Fprintf(&b, "Generated: %s at %s UTC\n\n", r.GeneratedAt.Format(dateFormat), r.GeneratedAt.Format("15:04"))

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Total Milestones", fmt.Sprintf("%d", r.Overview.TotalMilestones)})
	table.Append([]string{"Completed", fmt.Sprintf("%d", r.Overview.CompletedMilestones)})
	table.Append([]string{"Average Progress", fmt.Sprintf("%.1f%%", r.Overview.AveragePercent)})
	table.Render()
	b.WriteString("\n")

	for i, s := range r.Summaries {
		fmt.Fprintf(&b, "%d. %s [%s]\n", i+1, s.MilestoneTitle, statusText[s.Status])
		fmt.Fprintf(&b, "   %s %d%% (%d/%d issues)\n", progressBar(s.PercentComplete), s.PercentComplete, s.CompletedCount, s.TotalCount)
		if s.DueOn != nil {
			fmt.Fprintf(&b, "   Due: %s\n", s.DueOn.Format(dateFormat))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// progressBar draws a fixed-width unicode progress bar
func progressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// statusEmoji returns the status indicator for a completion percentage
func statusEmoji(percent int) string {
	switch {
	case percent >= 100:
		return "✅"
	case percent >= 75:
		return "🟢"
	case percent >= 50:
		return "🟡"
	case percent >= 25:
		return "🟠"
	default:
		return "🔴"
	}
}
