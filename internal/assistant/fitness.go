package assistant

import (
	"context"
	"fmt"

	"github.com/lucasreb/aidebot/internal/intent"
)

const fitnessConfidence = 0.85

// FitnessAssistant handles workout suggestion requests.
type FitnessAssistant struct {
	base
}

// NewFitnessAssistant returns a fitness assistant bound to the given profile.
func NewFitnessAssistant(profile *UserProfile, deps Deps) *FitnessAssistant {
	return &FitnessAssistant{base: newBase(profile, deps)}
}

// Handle serves SuggestWorkout requests and rejects everything else.
func (a *FitnessAssistant) Handle(ctx context.Context, req *Request) Response {
	if req.Intent != intent.SuggestWorkout {
		return a.reject(ctx, req, "Sorry, request not recognized.")
	}
	return a.suggestWorkout(ctx, req)
}

// suggestWorkout builds a workout plan around the user's fitness goal.
func (a *FitnessAssistant) suggestWorkout(ctx context.Context, req *Request) Response {
	goal := a.profile.Preference("fitness_goal", "general fitness")
	plan := fmt.Sprintf("30 minutes of %s exercises", goal)

	a.deps.Logger.InfoContext(ctx, "Suggesting workout",
		"request_id", req.ID, "user", a.profile.Name, "goal", goal)

	return Response{
		Message:         fmt.Sprintf("Suggested workout: %s", plan),
		Confidence:      fitnessConfidence,
		ActionPerformed: true,
	}
}
