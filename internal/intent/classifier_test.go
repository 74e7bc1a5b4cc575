// Package intent_test tests the intent classifier.
package intent_test

import (
	"testing"

	"github.com/lucasreb/aidebot/internal/intent"
)

// TestClassify covers keyword matching, category priority, and the Unknown
// fallback. Cases are grouped by behavior using subtests.
func TestClassify(t *testing.T) {
	t.Parallel()

	type classifyTestCase struct {
		name     string
		input    string
		expected intent.Intent
	}

	testGroups := map[string][]classifyTestCase{
		"Music Keywords": {
			{
				name:     "play keyword",
				input:    "Can you play some music for me?",
				expected: intent.RecommendMusic,
			},
			{
				name:     "song keyword",
				input:    "I'd like a good song",
				expected: intent.RecommendMusic,
			},
			{
				name:     "uppercase music keyword",
				input:    "MUSIC PLEASE",
				expected: intent.RecommendMusic,
			},
		},
		"Workout Keywords": {
			{
				name:     "workout keyword",
				input:    "I want a workout plan",
				expected: intent.SuggestWorkout,
			},
			{
				name:     "train keyword",
				input:    "help me train for a marathon",
				expected: intent.SuggestWorkout,
			},
			{
				name:     "exercise keyword",
				input:    "what exercise should I do",
				expected: intent.SuggestWorkout,
			},
		},
		"Study Keywords": {
			{
				name:     "study keyword",
				input:    "Please help me schedule a study session",
				expected: intent.ScheduleStudy,
			},
			{
				name:     "learn keyword",
				input:    "I want to learn Go",
				expected: intent.ScheduleStudy,
			},
		},
		"Category Priority": {
			{
				name:     "music wins over workout",
				input:    "play a track while I train",
				expected: intent.RecommendMusic,
			},
			{
				name:     "workout wins over study",
				input:    "schedule an exercise block",
				expected: intent.SuggestWorkout,
			},
			{
				name:     "music wins over study",
				input:    "learn this song",
				expected: intent.RecommendMusic,
			},
			{
				name:     "all three categories present",
				input:    "play music, train hard, study later",
				expected: intent.RecommendMusic,
			},
		},
		"Unknown": {
			{
				name:     "no keyword",
				input:    "what's the weather like?",
				expected: intent.Unknown,
			},
			{
				name:     "empty string",
				input:    "",
				expected: intent.Unknown,
			},
			{
				name:     "keyword as substring only",
				input:    "playground musicality",
				expected: intent.Unknown,
			},
		},
	}

	for groupName, cases := range testGroups {
		for _, tc := range cases {
			tc := tc
			t.Run(groupName+"/"+tc.name, func(t *testing.T) {
				t.Parallel()

				got := intent.Classify(tc.input)
				if got != tc.expected {
					t.Errorf("Classify(%q) = %v, want %v", tc.input, got, tc.expected)
				}
			})
		}
	}
}

// TestClassifyDeterministic verifies that repeated classification of the same
// text always yields the same intent.
func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Can you play some music for me?",
		"I want a workout plan",
		"Please help me schedule a study session",
		"tell me a joke",
	}

	for _, input := range inputs {
		first := intent.Classify(input)
		for i := 0; i < 10; i++ {
			if got := intent.Classify(input); got != first {
				t.Fatalf("Classify(%q) not deterministic: got %v then %v", input, first, got)
			}
		}
	}
}
