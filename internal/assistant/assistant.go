// Package assistant implements the assistant variants that respond to
// classified user requests. Each variant is bound to one user profile,
// handles exactly one intent, and rejects everything else with a
// conventional zero-confidence response.
package assistant

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lucasreb/aidebot/internal/database"
)

// Deps provides shared dependencies for assistant variants.
type Deps struct {
	Logger *slog.Logger
	Store  database.Store
}

// Assistant is the capability to greet a user and handle a request on their
// behalf. Implementations are bound to a single user profile.
type Assistant interface {
	// Profile returns the user profile the assistant is bound to.
	Profile() *UserProfile

	// Greet returns a personalized greeting response. Greetings carry full
	// confidence and never perform an action.
	Greet() Response

	// Handle processes a request and returns a response. Requests for an
	// intent the variant does not serve yield a rejection response; this is
	// not an error.
	Handle(ctx context.Context, req *Request) Response
}

// base carries the profile binding and the shared greeting behavior that all
// variants inherit by embedding.
type base struct {
	profile *UserProfile
	deps    Deps
}

func newBase(profile *UserProfile, deps Deps) base {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return base{profile: profile, deps: deps}
}

// Profile returns the bound user profile.
func (b base) Profile() *UserProfile {
	return b.profile
}

// Greet returns the personalized greeting response.
func (b base) Greet() Response {
	return Response{
		Message:    fmt.Sprintf("Hello, %s! How can assistance begin today?", b.profile.Name),
		Confidence: 1.0,
	}
}

// reject builds the conventional rejection response for requests the variant
// does not serve.
func (b base) reject(ctx context.Context, req *Request, message string) Response {
	b.deps.Logger.DebugContext(ctx, "Rejecting request with unsupported intent",
		"request_id", req.ID, "intent", req.Intent.String(), "user", b.profile.Name)
	return Response{Message: message, Confidence: 0.0}
}

// New builds the assistant variant named by kind ("music", "fitness" or
// "study") bound to the given profile.
func New(kind string, profile *UserProfile, deps Deps) (Assistant, error) {
	switch kind {
	case "music":
		return NewMusicAssistant(profile, deps), nil
	case "fitness":
		return NewFitnessAssistant(profile, deps), nil
	case "study":
		return NewStudyAssistant(profile, deps), nil
	default:
		return nil, fmt.Errorf("unknown assistant variant %q", kind)
	}
}
