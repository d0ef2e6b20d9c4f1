package domain

import "time"

// MilestoneState represents the open/closed state of a milestone on GitHub
type MilestoneState string

const (
	MilestoneStateOpen   MilestoneState = "open"
	MilestoneStateClosed MilestoneState = "closed"
)

// Milestone represents a GitHub milestone together with its issues.
// Completion figures are always derived from Issues, never stored.
type Milestone struct {
	Number      int            `json:"number"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	State       MilestoneState `json:"state"`
	DueOn       *time.Time     `json:"due_on,omitempty"`
	HTMLURL     string         `json:"html_url,omitempty"`
	Issues      []Issue        `json:"issues"`
}

// Issue represents a single trackable issue within a milestone
type Issue struct {
	Number          int    `json:"number"`
	Title           string `json:"title"`
	Closed          bool   `json:"closed"`
	MilestoneNumber int    `json:"milestone_number"`
}
