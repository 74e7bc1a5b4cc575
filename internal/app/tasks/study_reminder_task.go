package tasks

import (
	"context"
	"fmt"
	"time"
)

// upcomingSessionLimit bounds how many sessions a single reminder run reports.
const upcomingSessionLimit = 10

// newStudyReminderTask creates the scheduled task function that reports
// upcoming study sessions recorded by the study assistant.
func newStudyReminderTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "study_reminder")

	return func(ctx context.Context) error {
		sessions, err := deps.Store.GetUpcomingStudySessions(ctx, time.Now().UTC(), upcomingSessionLimit)
		if err != nil {
			log.ErrorContext(ctx, "Failed to fetch upcoming study sessions", "error", err)
			return fmt.Errorf("fetch upcoming study sessions: %w", err)
		}

		if len(sessions) == 0 {
			log.InfoContext(ctx, "No upcoming study sessions")
			return nil
		}

		for _, session := range sessions {
			log.InfoContext(ctx, "Upcoming study session",
				"topic", session.Topic,
				"scheduled_at", session.ScheduledAt.Format("2006-01-02 15:04"))
		}
		return nil
	}
}
