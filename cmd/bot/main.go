package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leyangloh/progress-bot/internal/api"
	"github.com/leyangloh/progress-bot/internal/bot"
	"github.com/leyangloh/progress-bot/internal/config"
	"github.com/leyangloh/progress-bot/internal/notifier"
	"github.com/leyangloh/progress-bot/internal/report"
	"github.com/leyangloh/progress-bot/internal/tracker"
)

var testMode bool

var rootCmd = &cobra.Command{
	Use:   "progress-bot",
	Short: "Milestone progress report bot",
	Long: `A bot that tracks GitHub milestone progress and posts formatted
progress reports to Slack.

Without flags it runs the full pipeline: fetch milestones, aggregate
completion statistics, render the report and deliver it to Slack.
With --test it prints the report instead of delivering it.`,
	RunE: runReport,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  `Serve the progress API with an on-demand report trigger endpoint.`,
	RunE:  runServe,
}

func init() {
	rootCmd.Flags().BoolVar(&testMode, "test", false, "dry run: print the report, skip Slack delivery")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildBot(cfg *config.Config, withNotifier bool) (*bot.Bot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var n notifier.Notifier
	if withNotifier {
		if err := cfg.ValidateDelivery(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		n = notifier.NewSlackNotifier(cfg.SlackToken, cfg.SlackChannel)
	}

	t := tracker.NewGitHubTracker(cfg.GitHubToken)
	return bot.New(t, n, cfg.Owner, cfg.Repo), nil
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	b, err := buildBot(cfg, !testMode)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if testMode {
		fmt.Println("Running test report (no delivery)...")
		rep, err := b.Run(ctx, true)
		if err != nil {
			return err
		}
		fmt.Print(report.RenderText(rep))
		return nil
	}

	fmt.Printf("Generating progress report for %s/%s...\n", cfg.Owner, cfg.Repo)
	rep, err := b.Run(ctx, false)
	if err != nil {
		return err
	}

	fmt.Printf("Report sent! Tracked %d milestones.\n", rep.Overview.TotalMilestones)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	b, err := buildBot(cfg, true)
	if err != nil {
		return err
	}

	handler := api.NewHandler(b)
	router := api.SetupRoutes(handler)

	addr := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	fmt.Printf("Starting API server on %s\n", addr)
	fmt.Printf("Tracking %s/%s\n", cfg.Owner, cfg.Repo)

	return router.Run(addr)
}
