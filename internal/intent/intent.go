// Package intent provides keyword-based intent classification for user input.
// Classification is rule-based: a fixed set of whole-word keyword patterns is
// tested in priority order and the first matching category wins.
package intent

// Intent represents the classified purpose of a user's text input.
type Intent int

// Supported intents. Unknown is the zero value and the fallback when no
// keyword matches.
const (
	Unknown Intent = iota
	RecommendMusic
	SuggestWorkout
	ScheduleStudy
)

// String returns a human-readable name for the intent, used in logs.
func (i Intent) String() string {
	switch i {
	case RecommendMusic:
		return "recommend_music"
	case SuggestWorkout:
		return "suggest_workout"
	case ScheduleStudy:
		return "schedule_study"
	default:
		return "unknown"
	}
}
