package assistant

import (
	"context"
	"fmt"

	"github.com/lucasreb/aidebot/internal/database"
	"github.com/lucasreb/aidebot/internal/intent"
)

const studyConfidence = 0.8

// sessionTimeFormat renders the scheduled time as "YYYY-MM-DD HH:MM".
const sessionTimeFormat = "2006-01-02 15:04"

// StudyAssistant handles study session scheduling requests.
type StudyAssistant struct {
	base
}

// NewStudyAssistant returns a study assistant bound to the given profile.
func NewStudyAssistant(profile *UserProfile, deps Deps) *StudyAssistant {
	return &StudyAssistant{base: newBase(profile, deps)}
}

// Handle serves ScheduleStudy requests and rejects everything else.
func (a *StudyAssistant) Handle(ctx context.Context, req *Request) Response {
	if req.Intent != intent.ScheduleStudy {
		return a.reject(ctx, req, "Unable to handle that request.")
	}
	return a.scheduleStudySession(ctx, req)
}

// scheduleStudySession schedules a study session on the user's configured
// topic at the request timestamp. The session is also recorded in the store
// so the reminder task can pick it up; a storage failure is logged but does
// not change the response.
func (a *StudyAssistant) scheduleStudySession(ctx context.Context, req *Request) Response {
	topic := a.profile.Preference("study_topic", "general topics")

	if a.deps.Store != nil {
		session := &database.StudySession{
			Topic:       topic,
			ScheduledAt: req.Timestamp,
		}
		if err := a.deps.Store.SaveStudySession(ctx, session); err != nil {
			a.deps.Logger.ErrorContext(ctx, "Failed to record study session",
				"request_id", req.ID, "user", a.profile.Name, "topic", topic, "error", err)
		}
	}

	a.deps.Logger.InfoContext(ctx, "Scheduling study session",
		"request_id", req.ID, "user", a.profile.Name, "topic", topic,
		"scheduled_at", req.Timestamp.Format(sessionTimeFormat))

	return Response{
		Message: fmt.Sprintf("Scheduled study session on '%s' at %s",
			topic, req.Timestamp.Format(sessionTimeFormat)),
		Confidence:      studyConfidence,
		ActionPerformed: true,
	}
}
