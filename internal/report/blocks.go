package report

import (
	"fmt"

	"github.com/slack-go/slack"

	"github.com/leyangloh/progress-bot/internal/domain"
)

// Blocks renders a report as Slack Block Kit blocks
func Blocks(r *domain.Report) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(plainText(fmt.Sprintf("🚀 %s/%s Weekly Progress", r.Owner, r.Repo))),
	}
	blocks = append(blocks, summaryBlocks(r)...)

	for i, s := range r.Summaries {
		blocks = append(blocks, milestoneBlocks(s)...)
		if i < len(r.Summaries)-1 {
			blocks = append(blocks, slack.NewDividerBlock())
		}
	}

	blocks = append(blocks, slack.NewContextBlock("",
		markdown(fmt.Sprintf("📅 Generated on %s at %s UTC | 🤖 Progress Bot",
			r.GeneratedAt.Format(dateFormat), r.GeneratedAt.Format("15:04"))),
	))

	return blocks
}

// FallbackText is the plain-text fallback sent alongside the blocks
func FallbackText(r *domain.Report) string {
	return fmt.Sprintf("%s/%s progress report: %d/%d milestones complete",
		r.Owner, r.Repo, r.Overview.CompletedMilestones, r.Overview.TotalMilestones)
}

func summaryBlocks(r *domain.Report) []slack.Block {
	return []slack.Block{
		slack.NewHeaderBlock(plainText("Milestone Summary")),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			markdown(fmt.Sprintf("*Total Milestones:* %d", r.Overview.TotalMilestones)),
			markdown(fmt.Sprintf("*Completed:* %d", r.Overview.CompletedMilestones)),
			markdown(fmt.Sprintf("*Average Progress:* %.1f%%", r.Overview.AveragePercent)),
			markdown(fmt.Sprintf("*Report Date:* %s", r.GeneratedAt.Format(dateFormat))),
		}, nil),
		slack.NewDividerBlock(),
	}
}

func milestoneBlocks(s domain.ProgressSummary) []slack.Block {
	title := s.MilestoneTitle
	if s.HTMLURL != "" {
		title = fmt.Sprintf("<%s|%s>", s.HTMLURL, s.MilestoneTitle)
	}

	fields := []*slack.TextBlockObject{
		markdown(fmt.Sprintf("*Milestone:* %s", title)),
		markdown(fmt.Sprintf("*Status:* %s %s", statusEmoji(s.PercentComplete), statusText[s.Status])),
		markdown(fmt.Sprintf("*Progress:* %d/%d issues", s.CompletedCount, s.TotalCount)),
	}
	if s.DueOn != nil {
		fields = append(fields, markdown(fmt.Sprintf("*Due Date:* %s", s.DueOn.Format(dateFormat))))
	}

	return []slack.Block{
		slack.NewHeaderBlock(plainText(s.MilestoneTitle)),
		slack.NewSectionBlock(nil, fields, nil),
		slack.NewSectionBlock(
			markdown(fmt.Sprintf("```%s``` %d%%", progressBar(s.PercentComplete), s.PercentComplete)),
			nil, nil),
	}
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, true, false)
}

func markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}
