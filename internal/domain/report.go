package domain

import "time"

// StatusLabel classifies how far along a milestone is
type StatusLabel string

const (
	StatusNotStarted StatusLabel = "not_started"
	StatusInProgress StatusLabel = "in_progress"
	StatusComplete   StatusLabel = "complete"
)

// ProgressSummary is the derived per-milestone completion view
type ProgressSummary struct {
	MilestoneNumber int         `json:"milestone_number"`
	MilestoneTitle  string      `json:"milestone_title"`
	CompletedCount  int         `json:"completed_count"`
	TotalCount      int         `json:"total_count"`
	PercentComplete int         `json:"percent_complete"`
	Status          StatusLabel `json:"status"`
	DueOn           *time.Time  `json:"due_on,omitempty"`
	HTMLURL         string      `json:"html_url,omitempty"`
}

// Overview holds run-level totals across all milestones
type Overview struct {
	TotalMilestones     int     `json:"total_milestones"`
	CompletedMilestones int     `json:"completed_milestones"`
	AveragePercent      float64 `json:"average_percent"`
}

// Report is the deliverable aggregate for one run.
// Built fresh every run, handed to the notifier, then discarded.
type Report struct {
	ID          string            `json:"id"`
	Owner       string            `json:"owner"`
	Repo        string            `json:"repo"`
	GeneratedAt time.Time         `json:"generated_at"`
	Summaries   []ProgressSummary `json:"summaries"`
	Overview    Overview          `json:"overview"`
}
