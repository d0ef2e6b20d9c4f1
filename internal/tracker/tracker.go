package tracker

import (
	"context"

	"github.com/leyangloh/progress-bot/internal/domain"
)

// Tracker defines the interface for fetching milestone progress data
type Tracker interface {
	// FetchMilestones retrieves all milestones of a repository, each
	// populated with its issues
	FetchMilestones(ctx context.Context, owner, repo string) ([]*domain.Milestone, error)
}
