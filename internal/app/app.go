// Package app implements the application orchestrator: it runs the console
// session and the task scheduler, and manages graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/lucasreb/aidebot/internal/config"
	"github.com/lucasreb/aidebot/internal/console"
	"github.com/lucasreb/aidebot/internal/database"
)

// App represents the main application and manages its components' lifecycle.
type App struct {
	logger       *slog.Logger
	cfg          *config.Config
	db           *sqlx.DB
	store        database.Store
	session      *console.Session
	interactions []console.Interaction
	scheduler    *Scheduler
}

// New creates a new application instance with all required dependencies.
func New(
	logger *slog.Logger,
	cfg *config.Config,
	db *sqlx.DB,
	store database.Store,
	session *console.Session,
	interactions []console.Interaction,
	scheduler *Scheduler,
) *App {
	return &App{
		logger:       logger.With("component", "app"),
		cfg:          cfg,
		db:           db,
		store:        store,
		session:      session,
		interactions: interactions,
		scheduler:    scheduler,
	}
}

// Run starts the scheduler and replays the console session, handling graceful
// shutdown on context cancellation. When no scheduled tasks are enabled the
// application exits as soon as the session finishes; otherwise it keeps the
// scheduler running until interrupted.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("Starting application orchestrator...")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.scheduler.Start(); err != nil {
			a.logger.Error("Failed to start scheduler", "error", err)
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		<-gCtx.Done()
		a.logger.Info("Shutdown signal received, stopping scheduler...")

		if err := a.scheduler.Stop(); err != nil {
			a.logger.Error("Error stopping scheduler", "error", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := a.session.Run(gCtx, a.interactions); err != nil {
			return fmt.Errorf("console session failed: %w", err)
		}

		if a.scheduler.JobCount() == 0 {
			a.logger.Info("Session finished and no scheduled tasks enabled, shutting down")
			cancel()
			return nil
		}

		a.logger.Info("Session finished, scheduler keeps running until interrupted")
		return nil
	})

	err := g.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error("Application stopped due to error", "error", err)
		return err
	}

	a.logger.Info("Application stopped gracefully.")
	return nil
}
