package assistant

import (
	"context"
	"fmt"

	"github.com/lucasreb/aidebot/internal/intent"
)

const musicConfidence = 0.9

// MusicAssistant handles music recommendation requests.
type MusicAssistant struct {
	base
}

// NewMusicAssistant returns a music assistant bound to the given profile.
func NewMusicAssistant(profile *UserProfile, deps Deps) *MusicAssistant {
	return &MusicAssistant{base: newBase(profile, deps)}
}

// Handle serves RecommendMusic requests and rejects everything else.
func (a *MusicAssistant) Handle(ctx context.Context, req *Request) Response {
	if req.Intent != intent.RecommendMusic {
		return a.reject(ctx, req, "Sorry, cannot handle that request.")
	}
	return a.recommendPlaylist(ctx, req)
}

// recommendPlaylist builds a simple playlist based on the user's mood.
func (a *MusicAssistant) recommendPlaylist(ctx context.Context, req *Request) Response {
	mood := a.profile.Preference("mood", "neutral")
	songs := []string{
		fmt.Sprintf("Song_%s_1", mood),
		fmt.Sprintf("Song_%s_2", mood),
	}

	a.deps.Logger.InfoContext(ctx, "Recommending playlist",
		"request_id", req.ID, "user", a.profile.Name, "mood", mood)

	return Response{
		Message:         fmt.Sprintf("Recommended playlist based on mood '%s': %v", mood, songs),
		Confidence:      musicConfidence,
		ActionPerformed: true,
	}
}
