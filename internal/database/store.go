package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the interface for database operations.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// SaveProfile inserts or updates a user profile keyed by name.
	SaveProfile(ctx context.Context, profile *Profile) error

	// GetProfile retrieves a user profile by name. Returns nil, nil if not found.
	GetProfile(ctx context.Context, name string) (*Profile, error)

	// GetAllProfiles retrieves all user profiles keyed by name.
	GetAllProfiles(ctx context.Context) (map[string]*Profile, error)

	// SaveStudySession inserts a new study session record.
	SaveStudySession(ctx context.Context, session *StudySession) error

	// GetUpcomingStudySessions retrieves up to limit sessions scheduled at or
	// after the given time, soonest first.
	GetUpcomingStudySessions(ctx context.Context, after time.Time, limit int) ([]*StudySession, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SaveProfile inserts or updates a user profile keyed by name.
func (s *sqlxStore) SaveProfile(ctx context.Context, profile *Profile) error {
	if profile == nil {
		return errors.New("cannot save nil profile")
	}
	if profile.Name == "" {
		return errors.New("profile must have a non-empty name")
	}
	if profile.Age < 0 {
		return errors.New("profile must have a non-negative age")
	}

	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	query := `
		INSERT INTO user_profiles (created_at, updated_at, name, age, premium, preferences)
		VALUES (:created_at, :updated_at, :name, :age, :premium, :preferences)
		ON CONFLICT(name) DO UPDATE SET
			updated_at  = excluded.updated_at,
			age         = excluded.age,
			premium     = excluded.premium,
			preferences = excluded.preferences`

	if _, err := s.db.NamedExecContext(ctx, query, profile); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save profile", "name", profile.Name, "error", err)
		return fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.DebugContext(ctx, "Saved profile", "name", profile.Name)
	return nil
}

// GetProfile retrieves a user profile by name. Returns nil, nil if not found.
func (s *sqlxStore) GetProfile(ctx context.Context, name string) (*Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile,
		`SELECT * FROM user_profiles WHERE name = ?`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.ErrorContext(ctx, "Failed to get profile", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// GetAllProfiles retrieves all user profiles keyed by name.
func (s *sqlxStore) GetAllProfiles(ctx context.Context) (map[string]*Profile, error) {
	var profiles []Profile
	err := s.db.SelectContext(ctx, &profiles,
		`SELECT * FROM user_profiles ORDER BY name`)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get all profiles", "error", err)
		return nil, fmt.Errorf("failed to get all profiles: %w", err)
	}

	result := make(map[string]*Profile, len(profiles))
	for i := range profiles {
		result[profiles[i].Name] = &profiles[i]
	}
	return result, nil
}

// SaveStudySession inserts a new study session record.
func (s *sqlxStore) SaveStudySession(ctx context.Context, session *StudySession) error {
	if session == nil {
		return errors.New("cannot save nil study session")
	}
	if session.Topic == "" {
		return errors.New("study session must have a non-empty topic")
	}
	if session.ScheduledAt.IsZero() {
		return errors.New("study session must have a non-zero scheduled time")
	}

	session.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO study_sessions (created_at, topic, scheduled_at)
		VALUES (:created_at, :topic, :scheduled_at)`

	if _, err := s.db.NamedExecContext(ctx, query, session); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save study session", "topic", session.Topic, "error", err)
		return fmt.Errorf("failed to save study session: %w", err)
	}

	s.logger.DebugContext(ctx, "Saved study session",
		"topic", session.Topic, "scheduled_at", session.ScheduledAt)
	return nil
}

// GetUpcomingStudySessions retrieves up to limit sessions scheduled at or
// after the given time, soonest first.
func (s *sqlxStore) GetUpcomingStudySessions(ctx context.Context, after time.Time, limit int) ([]*StudySession, error) {
	if limit <= 0 {
		limit = 10
	}

	var sessions []*StudySession
	err := s.db.SelectContext(ctx, &sessions,
		`SELECT * FROM study_sessions WHERE scheduled_at >= ? ORDER BY scheduled_at ASC LIMIT ?`,
		after, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get upcoming study sessions", "error", err)
		return nil, fmt.Errorf("failed to get upcoming study sessions: %w", err)
	}
	return sessions, nil
}

// RunSQLMaintenance performs database maintenance. VACUUM must run outside a
// transaction in SQLite, so statements are executed directly.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled before starting maintenance", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (ANALYZE + VACUUM)...")
	startTime := time.Now()

	if _, err := s.db.ExecContext(ctx, "ANALYZE"); err != nil {
		s.logger.ErrorContext(ctx, "ANALYZE failed", "error", err)
		return fmt.Errorf("analyze failed: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "VACUUM"); err != nil {
		s.logger.ErrorContext(ctx, "VACUUM failed", "error", err)
		return fmt.Errorf("vacuum failed: %w", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance completed", "duration", time.Since(startTime))
	return nil
}
