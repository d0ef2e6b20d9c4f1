package bot

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/leyangloh/progress-bot/internal/domain"
	"github.com/leyangloh/progress-bot/internal/notifier"
	"github.com/leyangloh/progress-bot/internal/progress"
	"github.com/leyangloh/progress-bot/internal/tracker"
)

// Bot runs the fetch, aggregate, render, deliver pipeline
type Bot struct {
	tracker  tracker.Tracker
	notifier notifier.Notifier
	owner    string
	repo     string
}

// New creates a new bot. The notifier may be nil when the bot is only
// ever used for dry runs.
func New(t tracker.Tracker, n notifier.Notifier, owner, repo string) *Bot {
	return &Bot{
		tracker:  t,
		notifier: n,
		owner:    owner,
		repo:     repo,
	}
}

// BuildReport fetches current milestone data and aggregates it into a
// fresh report. No delivery happens here.
func (b *Bot) BuildReport(ctx context.Context) (*domain.Report, error) {
	milestones, err := b.tracker.FetchMilestones(ctx, b.owner, b.repo)
	if err != nil {
		return nil, err
	}

	summaries := progress.Summarize(milestones)

	return &domain.Report{
		ID:          uuid.New().String(),
		Owner:       b.owner,
		Repo:        b.repo,
		GeneratedAt: time.Now().UTC(),
		Summaries:   summaries,
		Overview:    progress.Overview(summaries),
	}, nil
}

// Run executes the full pipeline. In dry-run mode the notifier is never
// invoked; the caller prints the returned report instead.
func (b *Bot) Run(ctx context.Context, dryRun bool) (*domain.Report, error) {
	report, err := b.BuildReport(ctx)
	if err != nil {
		return nil, err
	}

	if dryRun {
		return report, nil
	}

	if err := b.notifier.Send(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}
