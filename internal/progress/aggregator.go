package progress

import (
	"math"

	"github.com/leyangloh/progress-bot/internal/domain"
)

// Summarize computes per-milestone completion statistics. Pure function:
// milestone order is preserved and the input is never mutated.
func Summarize(milestones []*domain.Milestone) []domain.ProgressSummary {
	summaries := make([]domain.ProgressSummary, 0, len(milestones))

	for _, m := range milestones {
		total := len(m.Issues)
		completed := 0
		for _, issue := range m.Issues {
			if issue.Closed {
				completed++
			}
		}

		summaries = append(summaries, domain.ProgressSummary{
			MilestoneNumber: m.Number,
			MilestoneTitle:  m.Title,
			CompletedCount:  completed,
			TotalCount:      total,
			PercentComplete: percent(completed, total),
			Status:          status(completed, total),
			DueOn:           m.DueOn,
			HTMLURL:         m.HTMLURL,
		})
	}

	return summaries
}

// Overview computes run-level totals across all summaries
func Overview(summaries []domain.ProgressSummary) domain.Overview {
	overview := domain.Overview{
		TotalMilestones: len(summaries),
	}
	if len(summaries) == 0 {
		return overview
	}

	sum := 0
	for _, s := range summaries {
		if s.Status == domain.StatusComplete {
			overview.CompletedMilestones++
		}
		sum += s.PercentComplete
	}
	// One decimal place, matching the rendered report
	overview.AveragePercent = math.Round(float64(sum)/float64(len(summaries))*10) / 10

	return overview
}

// percent is the completion ratio rounded to the nearest whole percent
func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// status classifies a milestone by its completion counts. A milestone
// with no closed issues counts as not started, whether or not any
// issues exist yet.
func status(completed, total int) domain.StatusLabel {
	switch {
	case completed == 0:
		return domain.StatusNotStarted
	case completed == total:
		return domain.StatusComplete
	default:
		return domain.StatusInProgress
	}
}
