// Package console_test tests the console session transcript.
package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lucasreb/aidebot/internal/assistant"
	"github.com/lucasreb/aidebot/internal/console"
)

func mustProfile(t *testing.T, name string, age int, prefs map[string]string) *assistant.UserProfile {
	t.Helper()

	p, err := assistant.NewUserProfile(name, age, prefs, false)
	if err != nil {
		t.Fatalf("NewUserProfile(%q): %v", name, err)
	}
	return p
}

// TestSessionTranscript verifies the transcript ordering for each
// interaction: greeting, request echo, response message, separator.
func TestSessionTranscript(t *testing.T) {
	t.Parallel()

	alice := assistant.NewMusicAssistant(
		mustProfile(t, "Alice", 30, map[string]string{"mood": "happy"}), assistant.Deps{})
	bob := assistant.NewFitnessAssistant(
		mustProfile(t, "Bob", 22, map[string]string{"fitness_goal": "cardio"}), assistant.Deps{})

	var out bytes.Buffer
	session := console.NewSession(nil, &out)

	interactions := []console.Interaction{
		{Assistant: alice, Input: "Can you play some music for me?"},
		{Assistant: bob, Input: "I want a workout plan"},
	}
	if err := session.Run(context.Background(), interactions); err != nil {
		t.Fatalf("Run: %v", err)
	}

	transcript := out.String()
	markers := []string{
		"Hello, Alice!",
		"User request: 'Can you play some music for me?'",
		"Song_happy_1",
		strings.Repeat("-", 60),
		"Hello, Bob!",
		"User request: 'I want a workout plan'",
		"30 minutes of cardio exercises",
	}

	pos := 0
	for _, marker := range markers {
		idx := strings.Index(transcript[pos:], marker)
		if idx < 0 {
			t.Fatalf("transcript missing %q after position %d:\n%s", marker, pos, transcript)
		}
		pos += idx + len(marker)
	}
}

// TestSessionBlankInput verifies that a blank scripted input fails the run.
func TestSessionBlankInput(t *testing.T) {
	t.Parallel()

	alice := assistant.NewMusicAssistant(mustProfile(t, "Alice", 30, nil), assistant.Deps{})

	var out bytes.Buffer
	session := console.NewSession(nil, &out)

	err := session.Run(context.Background(), []console.Interaction{
		{Assistant: alice, Input: "   "},
	})
	if err == nil {
		t.Fatal("Run accepted blank input, want error")
	}
}

// TestSessionCancelled verifies the session stops when the context is done.
func TestSessionCancelled(t *testing.T) {
	t.Parallel()

	alice := assistant.NewMusicAssistant(mustProfile(t, "Alice", 30, nil), assistant.Deps{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	session := console.NewSession(nil, &out)

	err := session.Run(ctx, []console.Interaction{
		{Assistant: alice, Input: "play a song"},
	})
	if err == nil {
		t.Fatal("Run ignored cancelled context, want error")
	}
	if out.Len() != 0 {
		t.Errorf("cancelled session still wrote output: %q", out.String())
	}
}
