// Package core has the orchestration logic that turns git history into a report.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/gitreport/core/agg"
	"github.com/huangsam/gitreport/internal/contract"
	"github.com/huangsam/gitreport/internal/outwriter"
	"github.com/huangsam/gitreport/schema"
)

// ExecuteReport runs the history queries and prints the report.
// It serves as the main entry point for the root command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	report, err := GetReportResults(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteReport(report, cfg)
}

// GetReportResults runs the three history queries one after another and
// aggregates their output. Each query walks the full history on its own, so
// the sections are not guaranteed to see the same snapshot.
func GetReportResults(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.Report, error) {
	start := time.Now()
	dates, err := client.GetMonthLog(ctx, cfg.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("reading commit dates: %w", err)
	}
	weekdays, err := client.GetWeekdayLog(ctx, cfg.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("reading commit weekdays: %w", err)
	}
	shortstat, err := client.GetShortstatLog(ctx, cfg.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("reading commit shortstats: %w", err)
	}
	report := agg.BuildReport(cfg.RepoPath, dates, weekdays, shortstat)
	report.Duration = time.Since(start)
	return report, nil
}

// RenderReport runs the history queries and returns the report text
// without colors or bars.
func RenderReport(ctx context.Context, cfg *contract.Config, client contract.GitClient) (string, error) {
	report, err := GetReportResults(ctx, cfg, client)
	if err != nil {
		return "", err
	}
	plain := cfg.Clone()
	plain.UseColors = false
	plain.Bars = false
	return outwriter.NewOutWriter().RenderReport(report, plain)
}
