package tracker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/go-github/v55/github"
	"golang.org/x/oauth2"

	"github.com/leyangloh/progress-bot/internal/domain"
	apperrors "github.com/leyangloh/progress-bot/internal/errors"
)

// githubTracker implements Tracker using the GitHub API
type githubTracker struct {
	client      *github.Client
	rateLimiter RateLimiter
}

// NewGitHubTracker creates a new GitHub tracker
func NewGitHubTracker(token string) Tracker {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	return NewGitHubTrackerWithClient(client)
}

// NewGitHubTrackerWithClient creates a GitHub tracker around an existing
// client. Used by tests to point at a local server.
func NewGitHubTrackerWithClient(client *github.Client) Tracker {
	return &githubTracker{
		client:      client,
		rateLimiter: NewRateLimiter(),
	}
}

// FetchMilestones retrieves all milestones of a repository with their issues
func (t *githubTracker) FetchMilestones(ctx context.Context, owner, repo string) ([]*domain.Milestone, error) {
	if err := t.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var allMilestones []*domain.Milestone
	opts := &github.MilestoneListOptions{
		State:       "all",
		Sort:        "due_on",
		Direction:   "asc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		milestones, resp, err := t.client.Issues.ListMilestones(ctx, owner, repo, opts)
		if err != nil {
			return nil, mapGitHubError(fmt.Sprintf("repository %s/%s", owner, repo), err)
		}

		t.updateRateLimitFromResponse(resp)

		for _, m := range milestones {
			milestone := &domain.Milestone{
				Number:      m.GetNumber(),
				Title:       m.GetTitle(),
				Description: m.GetDescription(),
				State:       domain.MilestoneState(m.GetState()),
				HTMLURL:     m.GetHTMLURL(),
			}
			if m.DueOn != nil {
				due := m.DueOn.Time
				milestone.DueOn = &due
			}

			issues, err := t.fetchIssues(ctx, owner, repo, milestone.Number)
			if err != nil {
				return nil, err
			}
			milestone.Issues = issues

			allMilestones = append(allMilestones, milestone)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage

		if err := t.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return allMilestones, nil
}

// fetchIssues retrieves all issues assigned to a milestone
func (t *githubTracker) fetchIssues(ctx context.Context, owner, repo string, milestone int) ([]domain.Issue, error) {
	if err := t.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var allIssues []domain.Issue
	opts := &github.IssueListByRepoOptions{
		Milestone:   strconv.Itoa(milestone),
		State:       "all",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		issues, resp, err := t.client.Issues.ListByRepo(ctx, owner, repo, opts)
		if err != nil {
			return nil, mapGitHubError(fmt.Sprintf("issues for milestone %d in %s/%s", milestone, owner, repo), err)
		}

		t.updateRateLimitFromResponse(resp)

		for _, issue := range issues {
			// The issues API also returns pull requests
			if issue.IsPullRequest() {
				continue
			}
			allIssues = append(allIssues, domain.Issue{
				Number:          issue.GetNumber(),
				Title:           issue.GetTitle(),
				Closed:          issue.GetState() == "closed",
				MilestoneNumber: milestone,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage

		if err := t.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return allIssues, nil
}

// updateRateLimitFromResponse updates the rate limiter from API response
func (t *githubTracker) updateRateLimitFromResponse(resp *github.Response) {
	if resp != nil && resp.Rate.Remaining >= 0 {
		t.rateLimiter.UpdateLimit(resp.Rate.Remaining, resp.Rate.Reset.Time)
	}
}

// mapGitHubError translates go-github failures into the error taxonomy
func mapGitHubError(resource string, err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return apperrors.NewRateLimitedError("GitHub API rate limit exceeded")
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return apperrors.NewUnauthorizedError("GitHub credentials rejected")
		case http.StatusNotFound:
			return apperrors.NewNotFoundError(resource)
		case http.StatusTooManyRequests:
			return apperrors.NewRateLimitedError("GitHub API rate limit exceeded")
		}
		return apperrors.NewNetworkError(fmt.Sprintf("GitHub API request for %s failed", resource), err)
	}

	return apperrors.NewNetworkError(fmt.Sprintf("failed to reach GitHub for %s", resource), err)
}
