// Package main contains the entrypoint for the aidebot console application.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lucasreb/aidebot/internal/app"
	"github.com/lucasreb/aidebot/internal/app/tasks"
	"github.com/lucasreb/aidebot/internal/assistant"
	"github.com/lucasreb/aidebot/internal/config"
	"github.com/lucasreb/aidebot/internal/console"
	"github.com/lucasreb/aidebot/internal/database"
	"github.com/lucasreb/aidebot/internal/logger"

	_ "modernc.org/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop() // Ensure context cancellation is signaled before exit
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger, db,
// assistants, console session, scheduler), handles graceful shutdown, and
// returns an exit code (0 for success, 1 for failure).
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
		return 1
	}
	defer database.CloseDB(db)
	store := database.NewStore(db, log)

	interactions, err := buildInteractions(ctx, cfg, log, store)
	if err != nil {
		log.Error("Failed to set up assistants", "error", err)
		return 1
	}

	tDeps := tasks.TaskDeps{
		Logger: log,
		Store:  store,
		Config: cfg,
	}
	sched := app.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))

	session := console.NewSession(log, os.Stdout)
	application := app.New(log, cfg, db, store, session, interactions, sched)

	log.Info("Starting aidebot...")
	if runErr := application.Run(ctx); runErr != nil {
		log.Error("Application stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Application stopped gracefully.")
	return 0
}

// buildInteractions constructs the user profiles and assistant variants from
// the configuration, persists each profile, and pairs every script step with
// its user's assistant.
func buildInteractions(ctx context.Context, cfg *config.Config, log *slog.Logger, store database.Store) ([]console.Interaction, error) {
	deps := assistant.Deps{Logger: log, Store: store}

	assistants := make(map[string]assistant.Assistant, len(cfg.Users))
	for _, u := range cfg.Users {
		profile, err := assistant.NewUserProfile(u.Name, u.Age, u.Preferences, u.Premium)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", u.Name, err)
		}

		row, err := database.NewProfile(u.Name, u.Age, u.Premium, u.Preferences)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", u.Name, err)
		}
		if err := store.SaveProfile(ctx, row); err != nil {
			return nil, fmt.Errorf("user %q: %w", u.Name, err)
		}

		a, err := assistant.New(u.Assistant, profile, deps)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", u.Name, err)
		}
		assistants[u.Name] = a
	}

	interactions := make([]console.Interaction, 0, len(cfg.Script))
	for _, step := range cfg.Script {
		a, ok := assistants[step.User]
		if !ok {
			// Config validation guarantees this, but guard anyway.
			return nil, fmt.Errorf("script step references unknown user %q", step.User)
		}
		interactions = append(interactions, console.Interaction{Assistant: a, Input: step.Input})
	}

	return interactions, nil
}
