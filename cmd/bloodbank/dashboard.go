package main

import (
	"context"
	"log/slog"

	"github.com/erazemk/bloodbank/internal/views"
)

func cmdDashboard(a *app, ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	stats, err := a.client.DashboardStats(ctx)
	if err != nil {
		return fail("load dashboard", err)
	}
	if err := views.Dashboard(a.out, *stats); err != nil {
		return err
	}

	// Health is informational; a failure here does not fail the page.
	health, err := a.client.Health(ctx)
	if err != nil {
		slog.Warn("health check failed", "error", err)
		return nil
	}
	a.printf("\nBackend: %s, database: %s\n", health.Status, health.Database)
	return nil
}
