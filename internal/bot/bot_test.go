package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leyangloh/progress-bot/internal/domain"
	apperrors "github.com/leyangloh/progress-bot/internal/errors"
)

// fakeTracker implements tracker.Tracker
type fakeTracker struct {
	milestones []*domain.Milestone
	err        error
	calls      int
}

func (f *fakeTracker) FetchMilestones(ctx context.Context, owner, repo string) ([]*domain.Milestone, error) {
	f.calls++
	return f.milestones, f.err
}

// fakeNotifier implements notifier.Notifier
type fakeNotifier struct {
	sent []*domain.Report
	err  error
}

func (f *fakeNotifier) Send(ctx context.Context, report *domain.Report) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, report)
	return nil
}

func fixtures() []*domain.Milestone {
	return []*domain.Milestone{
		{
			Number: 1,
			Title:  "Lizard X-rays",
			Issues: []domain.Issue{
				{Number: 1, Closed: true, MilestoneNumber: 1},
				{Number: 2, Closed: true, MilestoneNumber: 1},
				{Number: 3, Closed: true, MilestoneNumber: 1},
				{Number: 4, MilestoneNumber: 1},
				{Number: 5, MilestoneNumber: 1},
			},
		},
		{Number: 2, Title: "Lizard Toepads"},
	}
}

func TestRunDryRunNeverDelivers(t *testing.T) {
	tr := &fakeTracker{milestones: fixtures()}
	n := &fakeNotifier{}
	b := New(tr, n, "leyangloh", "FakeProgress")

	report, err := b.Run(context.Background(), true)
	require.NoError(t, err)

	assert.Empty(t, n.sent)
	assert.Equal(t, 1, tr.calls)
	require.Len(t, report.Summaries, 2)
	assert.Equal(t, 60, report.Summaries[0].PercentComplete)
}

func TestRunDelivers(t *testing.T) {
	tr := &fakeTracker{milestones: fixtures()}
	n := &fakeNotifier{}
	b := New(tr, n, "leyangloh", "FakeProgress")

	report, err := b.Run(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, n.sent, 1)
	assert.Equal(t, report.ID, n.sent[0].ID)
}

func TestRunFreshReportPerRun(t *testing.T) {
	tr := &fakeTracker{milestones: fixtures()}
	b := New(tr, &fakeNotifier{}, "leyangloh", "FakeProgress")

	first, err := b.Run(context.Background(), true)
	require.NoError(t, err)
	second, err := b.Run(context.Background(), true)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, tr.calls)
}

func TestRunTrackerErrorAborts(t *testing.T) {
	tr := &fakeTracker{err: apperrors.NewUnauthorizedError("GitHub credentials rejected")}
	n := &fakeNotifier{}
	b := New(tr, n, "leyangloh", "FakeProgress")

	_, err := b.Run(context.Background(), false)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Empty(t, n.sent)
}

func TestRunDeliveryErrorSurfaces(t *testing.T) {
	tr := &fakeTracker{milestones: fixtures()}
	n := &fakeNotifier{err: apperrors.NewDeliveryError("failed to post report to Slack", nil)}
	b := New(tr, n, "leyangloh", "FakeProgress")

	_, err := b.Run(context.Background(), false)
	require.Error(t, err)
	assert.True(t, apperrors.IsDelivery(err))
}

func TestBuildReportMetadata(t *testing.T) {
	tr := &fakeTracker{milestones: fixtures()}
	b := New(tr, nil, "leyangloh", "FakeProgress")

	report, err := b.BuildReport(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "leyangloh", report.Owner)
	assert.Equal(t, "FakeProgress", report.Repo)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, 2, report.Overview.TotalMilestones)
}
