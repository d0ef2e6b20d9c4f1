package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leyangloh/progress-bot/internal/domain"
)

func milestone(number int, title string, total, closed int) *domain.Milestone {
	m := &domain.Milestone{
		Number: number,
		Title:  title,
	}
	for i := 0; i < total; i++ {
		m.Issues = append(m.Issues, domain.Issue{
			Number:          i + 1,
			Closed:          i < closed,
			MilestoneNumber: number,
		})
	}
	return m
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		closed        int
		wantPercent   int
		wantStatus    domain.StatusLabel
		wantCompleted int
	}{
		{
			name:        "no issues logged",
			total:       0,
			closed:      0,
			wantPercent: 0,
			wantStatus:  domain.StatusNotStarted,
		},
		{
			name:        "issues logged but none closed",
			total:       4,
			closed:      0,
			wantPercent: 0,
			wantStatus:  domain.StatusNotStarted,
		},
		{
			name:          "partially complete",
			total:         5,
			closed:        3,
			wantPercent:   60,
			wantStatus:    domain.StatusInProgress,
			wantCompleted: 3,
		},
		{
			name:          "all issues closed",
			total:         3,
			closed:        3,
			wantPercent:   100,
			wantStatus:    domain.StatusComplete,
			wantCompleted: 3,
		},
		{
			name:          "rounding to nearest percent",
			total:         3,
			closed:        1,
			wantPercent:   33,
			wantStatus:    domain.StatusInProgress,
			wantCompleted: 1,
		},
		{
			name:          "rounding up",
			total:         3,
			closed:        2,
			wantPercent:   67,
			wantStatus:    domain.StatusInProgress,
			wantCompleted: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summaries := Summarize([]*domain.Milestone{milestone(1, "m", tt.total, tt.closed)})
			require.Len(t, summaries, 1)

			s := summaries[0]
			assert.Equal(t, tt.wantCompleted, s.CompletedCount)
			assert.Equal(t, tt.total, s.TotalCount)
			assert.Equal(t, tt.wantPercent, s.PercentComplete)
			assert.Equal(t, tt.wantStatus, s.Status)
		})
	}
}

func TestSummarizeDocumentedScenarios(t *testing.T) {
	summaries := Summarize([]*domain.Milestone{
		milestone(1, "Lizard X-rays", 5, 3),
		milestone(2, "Lizard Toepads", 0, 0),
	})
	require.Len(t, summaries, 2)

	xrays := summaries[0]
	assert.Equal(t, "Lizard X-rays", xrays.MilestoneTitle)
	assert.Equal(t, 3, xrays.CompletedCount)
	assert.Equal(t, 5, xrays.TotalCount)
	assert.Equal(t, 60, xrays.PercentComplete)
	assert.Equal(t, domain.StatusInProgress, xrays.Status)

	toepads := summaries[1]
	assert.Equal(t, "Lizard Toepads", toepads.MilestoneTitle)
	assert.Equal(t, 0, toepads.PercentComplete)
	assert.Equal(t, domain.StatusNotStarted, toepads.Status)
}

func TestSummarizePreservesOrder(t *testing.T) {
	summaries := Summarize([]*domain.Milestone{
		milestone(3, "third", 1, 0),
		milestone(1, "first", 1, 1),
		milestone(2, "second", 2, 1),
	})
	require.Len(t, summaries, 3)
	assert.Equal(t, "third", summaries[0].MilestoneTitle)
	assert.Equal(t, "first", summaries[1].MilestoneTitle)
	assert.Equal(t, "second", summaries[2].MilestoneTitle)
}

func TestSummarizeEmpty(t *testing.T) {
	summaries := Summarize(nil)
	assert.Empty(t, summaries)
	assert.NotNil(t, summaries)
}

func TestOverview(t *testing.T) {
	summaries := Summarize([]*domain.Milestone{
		milestone(1, "a", 5, 3),
		milestone(2, "b", 2, 2),
		milestone(3, "c", 0, 0),
	})

	overview := Overview(summaries)
	assert.Equal(t, 3, overview.TotalMilestones)
	assert.Equal(t, 1, overview.CompletedMilestones)
	// (60 + 100 + 0) / 3
	assert.InDelta(t, 53.3, overview.AveragePercent, 0.01)
}

func TestOverviewEmpty(t *testing.T) {
	overview := Overview(nil)
	assert.Equal(t, 0, overview.TotalMilestones)
	assert.Equal(t, 0, overview.CompletedMilestones)
	assert.Zero(t, overview.AveragePercent)
}
